package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
	requestBooking "github.com/m04kA/HMS-TriageService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPastSlot           = "дата бронирования не может быть в прошлом"
)

type Handler struct {
	useCase RequestBookingUseCase
	metrics Metrics
	logger  Logger
}

// NewHandler создает новый handler создания заявки.
// metrics может быть nil, если сбор метрик выключен.
func NewHandler(useCase RequestBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrPastSlot):
			h.logger.Warn("POST /bookings - Past slot: patient=%s, slot=%q", req.PatientName, req.SlotTime)
			handlers.RespondBadRequest(w, msgPastSlot)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: patient=%s, error=%v",
				req.PatientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.IncBookingCreated()
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, patient=%s, equipment=%d",
		result.ID, req.PatientName, req.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
