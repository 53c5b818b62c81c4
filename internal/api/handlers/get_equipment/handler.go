package get_equipment

import (
	"net/http"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListWithAvailability()

	h.logger.Info("GET /equipment - %d items", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
