package request_booking

import (
	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// UseCase use case приёма заявки на оборудование
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет приём заявки.
// Заявка создаётся в статусе PENDING с авторитетным приоритетом NORMAL
// независимо от запрошенного: приоритет назначает администратор при
// подтверждении. При ошибке валидации хранилище не изменяется.
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: patient=%s, equipment=%d, requestedPriority=%s, slot=%q",
		req.PatientName, req.EquipmentID, req.RequestedPriority, req.SlotTime)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("RequestBooking: patient=%s tried to book in the past: %q",
			req.PatientName, req.SlotTime)
		return nil, err
	}

	requested := domain.Priority(req.RequestedPriority)
	if req.RequestedPriority == "" {
		requested = domain.PriorityNormal
	}

	slotTime := req.SlotTime
	if slotTime == "" {
		slotTime = domain.SlotTimeASAP
	}

	booking := uc.bookingRepo.Create(&domain.Booking{
		PatientName:       req.PatientName,
		EquipmentID:       req.EquipmentID,
		RequestedPriority: requested,
		Priority:          domain.PriorityNormal,
		SlotTime:          slotTime,
		Status:            domain.StatusPending,
		BookingTime:       now,
	})

	uc.logger.Info("RequestBooking: created booking id=%d for patient=%s, slot=%q",
		booking.ID, booking.PatientName, booking.SlotTime)

	return &Response{
		ID:                booking.ID,
		PatientName:       booking.PatientName,
		EquipmentID:       booking.EquipmentID,
		RequestedPriority: string(booking.RequestedPriority),
		Priority:          string(booking.Priority),
		SlotTime:          booking.SlotTime,
		Status:            string(booking.Status),
		BookingTime:       booking.BookingTime,
	}, nil
}
