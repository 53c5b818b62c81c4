package equipment

import (
	"github.com/m04kA/HMS-TriageService/internal/domain"
	"github.com/m04kA/HMS-TriageService/internal/service/availability"
)

// EquipmentRepository интерфейс реестра оборудования
type EquipmentRepository interface {
	List() []*domain.Equipment
}

// Estimator интерфейс оценщика доступности
type Estimator interface {
	Estimate(eq *domain.Equipment) availability.Estimate
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
