package call_next

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// UseCase use case вызова следующего пациента (диспетчеризация).
// Выбирает заявку с наивысшим приоритетом и наибольшим временем
// ожидания, удаляет её из хранилища и занимает оборудование на время
// обслуживания.
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRegistry
	releaseDelay  time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// releaseDelay - задержка до автоматического освобождения оборудования
// после диспетчеризации.
func NewUseCase(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRegistry,
	releaseDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		releaseDelay:  releaseDelay,
		logger:        logger,
	}
}

// Execute выполняет диспетчеризацию для указанного оборудования.
//
// Порядок очереди пересчитывается на каждом вызове: приоритет по
// убыванию, при равенстве - время создания по возрастанию. Голова
// очереди удаляется из хранилища навсегда, оборудование переводится в
// IN_USE, и планируется отложенное освобождение. Освобождение защищено
// токеном занятости: если до срабатывания таймера оборудование было
// занято повторно, устаревший таймер ничего не делает.
//
// Неизвестный ID оборудования не является ошибкой: заявка
// диспетчеризуется, а статус оборудования просто не меняется.
func (uc *UseCase) Execute(equipmentID int64) (*Response, error) {
	queue := uc.bookingRepo.ListConfirmedByEquipment(equipmentID)
	if len(queue) == 0 {
		uc.logger.Warn("CallNext: queue is empty for equipment id=%d", equipmentID)
		return nil, ErrQueueEmpty
	}

	domain.SortByTriage(queue)
	head := queue[0]

	if err := uc.bookingRepo.Remove(head.ID); err != nil {
		uc.logger.Error("CallNext: failed to remove booking id=%d: %v", head.ID, err)
		return nil, fmt.Errorf("%w: Execute - remove booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CallNext: dispatched booking id=%d (patient=%s, priority=%s) on equipment id=%d",
		head.ID, head.PatientName, head.Priority, equipmentID)

	if token, ok := uc.equipmentRepo.MarkInUse(equipmentID); ok {
		uc.logger.Info("CallNext: equipment id=%d is now IN_USE", equipmentID)
		uc.scheduleRelease(equipmentID, token)
	}

	return &Response{
		ID:                head.ID,
		PatientName:       head.PatientName,
		EquipmentID:       head.EquipmentID,
		RequestedPriority: string(head.RequestedPriority),
		Priority:          string(head.Priority),
		SlotTime:          head.SlotTime,
		Status:            string(head.Status),
		BookingTime:       head.BookingTime,
	}, nil
}

// scheduleRelease планирует отложенное освобождение оборудования.
// Таймер не отменяется и никем не ожидается; защита от гонки с
// последующими диспетчеризациями обеспечивается токеном занятости.
func (uc *UseCase) scheduleRelease(equipmentID int64, token uint64) {
	time.AfterFunc(uc.releaseDelay, func() {
		if uc.equipmentRepo.Release(equipmentID, token) {
			uc.logger.Info("CallNext: equipment id=%d is now AVAILABLE", equipmentID)
		}
	})
}
