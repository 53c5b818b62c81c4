package get_pending_bookings

import (
	"net/http"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
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

// Handle GET /api/v1/bookings/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListPending()

	h.logger.Info("GET /bookings/pending - %d pending bookings", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
