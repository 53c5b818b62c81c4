package availability

import "time"

// BookingRepository интерфейс хранилища заявок
type BookingRepository interface {
	CountConfirmedByEquipment(equipmentID int64) int
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
