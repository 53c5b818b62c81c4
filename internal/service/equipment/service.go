package equipment

import (
	"github.com/m04kA/HMS-TriageService/internal/service/equipment/models"
)

// Service сервис для работы с оборудованием
type Service struct {
	equipmentRepo EquipmentRepository
	estimator     Estimator
	logger        Logger
}

// NewService создает новый экземпляр сервиса оборудования
func NewService(equipmentRepo EquipmentRepository, estimator Estimator, logger Logger) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		estimator:     estimator,
		logger:        logger,
	}
}

// ListWithAvailability возвращает всё оборудование в порядке вставки
// вместе с длиной очереди и проекцией ближайшего свободного времени
func (s *Service) ListWithAvailability() []*models.EquipmentResponse {
	items := s.equipmentRepo.List()

	result := make([]*models.EquipmentResponse, 0, len(items))
	for _, eq := range items {
		est := s.estimator.Estimate(eq)
		result = append(result, models.FromDomainEquipment(eq, est.QueueLength, est.NextAvailable))
	}

	s.logger.Info("ListWithAvailability: %d equipment items", len(result))
	return result
}
