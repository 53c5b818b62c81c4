package availability

import (
	"time"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// Человекочитаемые значения NextAvailable для особых состояний
const (
	NextFreeNow         = "Now"
	NextFreeUnderRepair = "Under Repair"
)

// Estimate оценка ближайшей доступности оборудования
type Estimate struct {
	QueueLength   int
	NextAvailable string
}

// Service оценивает ближайший свободный слот оборудования.
// Это эвристическая проекция, а не резервирование: остаток текущей
// занятости и влияние EMERGENCY-пересортировки не учитываются.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
}

// NewService создает новый экземпляр оценщика доступности
func NewService(bookingRepo BookingRepository) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
	}
}

// Estimate возвращает длину очереди и проекцию ближайшего свободного
// времени для оборудования:
//   - MAINTENANCE: "Under Repair", время не вычисляется
//   - AVAILABLE с пустой очередью: "Now"
//   - иначе: текущее время + длина очереди * длительность обслуживания,
//     в формате HH:MM локального времени
func (s *Service) Estimate(eq *domain.Equipment) Estimate {
	queueLength := s.bookingRepo.CountConfirmedByEquipment(eq.ID)

	if eq.IsUnderMaintenance() {
		return Estimate{QueueLength: queueLength, NextAvailable: NextFreeUnderRepair}
	}

	if queueLength == 0 && eq.IsAvailable() {
		return Estimate{QueueLength: 0, NextAvailable: NextFreeNow}
	}

	wait := time.Duration(queueLength*eq.EffectiveServiceDuration()) * time.Minute
	next := s.timeProvider.Now().Add(wait)

	return Estimate{
		QueueLength:   queueLength,
		NextAvailable: next.Format(domain.TimeFormat),
	}
}
