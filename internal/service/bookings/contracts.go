package bookings

import "github.com/m04kA/HMS-TriageService/internal/domain"

// BookingRepository интерфейс хранилища заявок
type BookingRepository interface {
	Confirm(id int64, priority domain.Priority) (*domain.Booking, error)
	ListPending() []*domain.Booking
	ListConfirmedByEquipment(equipmentID int64) []*domain.Booking
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
