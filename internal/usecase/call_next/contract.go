package call_next

import "github.com/m04kA/HMS-TriageService/internal/domain"

// BookingRepository интерфейс хранилища заявок
type BookingRepository interface {
	ListConfirmedByEquipment(equipmentID int64) []*domain.Booking
	Remove(id int64) error
}

// EquipmentRegistry интерфейс реестра оборудования.
// MarkInUse выдаёт токен занятости; Release с этим токеном возвращает
// оборудование в AVAILABLE, только если занятость не была перезаписана
// более поздним MarkInUse.
type EquipmentRegistry interface {
	MarkInUse(id int64) (uint64, bool)
	Release(id int64, token uint64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
