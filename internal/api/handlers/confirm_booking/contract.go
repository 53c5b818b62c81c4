package confirm_booking

import (
	"github.com/m04kA/HMS-TriageService/internal/service/bookings/models"
)

type BookingsService interface {
	Confirm(id int64, assignedPriority string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
