package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
	bookingsService "github.com/m04kA/HMS-TriageService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID заявки"
	msgInvalidPriority    = "некорректный приоритет, ожидается NORMAL, URGENT или EMERGENCY"
	msgBookingNotFound    = "заявка не найдена"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Confirm(bookingID, req.AssignedPriority)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidPriority):
			h.logger.Warn("POST /bookings/{id}/confirm - Invalid priority: booking_id=%d, priority=%s",
				bookingID, req.AssignedPriority)
			handlers.RespondBadRequest(w, msgInvalidPriority)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Confirmed: booking_id=%d, priority=%s",
		bookingID, req.AssignedPriority)
	handlers.RespondJSON(w, http.StatusOK, result)
}
