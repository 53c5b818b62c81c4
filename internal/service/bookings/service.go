package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/HMS-TriageService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-TriageService/internal/infra/storage/booking"
	"github.com/m04kA/HMS-TriageService/internal/service/bookings/models"
)

// Service сервис для работы с заявками на оборудование
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListPending возвращает заявки, ожидающие подтверждения администратором,
// в порядке создания
func (s *Service) ListPending() []*models.BookingResponse {
	pending := s.bookingRepo.ListPending()
	s.logger.Info("ListPending: %d pending bookings", len(pending))
	return models.FromDomainBookingList(pending)
}

// Confirm подтверждает заявку и назначает авторитетный клинический
// приоритет. Приоритет валидируется по множеству NORMAL / URGENT /
// EMERGENCY. Повторное подтверждение повторно применяет приоритет.
func (s *Service) Confirm(id int64, assignedPriority string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: booking id=%d, priority=%s", id, assignedPriority)

	priority, err := models.ToDomainPriority(assignedPriority)
	if err != nil {
		s.logger.Warn("Confirm: invalid priority=%s for booking id=%d", assignedPriority, id)
		return nil, ErrInvalidPriority
	}

	booking, err := s.bookingRepo.Confirm(id, priority)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: booking id=%d confirmed as %s (patient=%s)",
		booking.ID, booking.Priority, booking.PatientName)
	return models.FromDomainBooking(booking), nil
}

// OrderedQueue возвращает CONFIRMED заявки на оборудование в порядке
// триажа: приоритет по убыванию, при равенстве - время создания по
// возрастанию. Порядок пересчитывается при каждом вызове.
func (s *Service) OrderedQueue(equipmentID int64) []*models.BookingResponse {
	queue := s.bookingRepo.ListConfirmedByEquipment(equipmentID)
	domain.SortByTriage(queue)

	s.logger.Info("OrderedQueue: equipment id=%d, %d confirmed bookings", equipmentID, len(queue))
	return models.FromDomainBookingList(queue)
}
