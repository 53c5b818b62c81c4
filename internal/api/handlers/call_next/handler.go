package call_next

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-TriageService/internal/api/handlers"
	callNext "github.com/m04kA/HMS-TriageService/internal/usecase/call_next"
)

const (
	msgInvalidEquipmentID = "некорректный ID оборудования"
	msgQueueEmpty         = "очередь пуста"
)

type Handler struct {
	useCase CallNextUseCase
	metrics Metrics
	logger  Logger
}

// NewHandler создает новый handler вызова следующего пациента.
// metrics может быть nil, если сбор метрик выключен.
func NewHandler(useCase CallNextUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/queue/{equipmentId}/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["equipmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /queue/{equipmentId}/next - Invalid equipment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	result, err := h.useCase.Execute(equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, callNext.ErrQueueEmpty):
			h.logger.Warn("POST /queue/{equipmentId}/next - Queue empty: equipment_id=%d", equipmentID)
			handlers.RespondNotFound(w, msgQueueEmpty)

		default:
			h.logger.Error("POST /queue/{equipmentId}/next - Failed to dispatch: equipment_id=%d, error=%v",
				equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.IncDispatch()
	}

	h.logger.Info("POST /queue/{equipmentId}/next - Dispatched: booking_id=%d, patient=%s, equipment_id=%d",
		result.ID, result.PatientName, equipmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
