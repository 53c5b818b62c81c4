package get_queue

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
)

const (
	msgInvalidEquipmentID = "некорректный ID оборудования"
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

// Handle GET /api/v1/queue/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /queue/{equipmentId} - Invalid equipment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result := h.service.OrderedQueue(equipmentID)

	h.logger.Info("GET /queue/{equipmentId} - equipment_id=%d, %d bookings", equipmentID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
