package get_queue

import (
	"github.com/m04kA/HMS-TriageService/internal/service/bookings/models"
)

type BookingsService interface {
	OrderedQueue(equipmentID int64) []*models.BookingResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
