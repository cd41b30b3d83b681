package get_fusion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/service/fusions"
)

const (
	msgInvalidFusionID = "некорректный ID объединения"
	msgNotFound        = "объединение не найдено"
)

type Handler struct {
	service FusionService
	logger  Logger
}

func NewHandler(service FusionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fusions/{fusionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем fusionId из URL
	vars := mux.Vars(r)
	fusionIDStr := vars["fusionId"]

	fusionID, err := strconv.ParseInt(fusionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /fusions/{id} - Invalid fusion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFusionID)
		return
	}

	fusion, err := h.service.GetByID(r.Context(), fusionID)
	if err != nil {
		switch {
		case errors.Is(err, fusions.ErrFusionNotFound):
			h.logger.Warn("GET /fusions/{id} - Fusion not found: fusion_id=%d", fusionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /fusions/{id} - Failed to get fusion: fusion_id=%d, error=%v", fusionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fusions/{id} - Fusion retrieved successfully: fusion_id=%d", fusionID)
	handlers.RespondJSON(w, http.StatusOK, fusion)
}
