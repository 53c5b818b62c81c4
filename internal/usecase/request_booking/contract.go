package request_booking

import (
	"time"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// BookingRepository интерфейс хранилища заявок
type BookingRepository interface {
	Create(b *domain.Booking) *domain.Booking
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
