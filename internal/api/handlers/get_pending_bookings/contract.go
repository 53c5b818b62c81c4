package get_pending_bookings

import (
	"github.com/m04kA/HMS-TriageService/internal/service/bookings/models"
)

type BookingsService interface {
	ListPending() []*models.BookingResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
