package get_equipment

import (
	"github.com/m04kA/HMS-TriageService/internal/service/equipment/models"
)

type EquipmentService interface {
	ListWithAvailability() []*models.EquipmentResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
