package list_fusions

import (
	"net/http"
	"strconv"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/service/fusions/models"
)

const (
	msgInvalidSpaceID = "некорректный ID помещения"
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

// Handle GET /api/v1/fusions
// Query params: spaceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListFusionsRequest{}

	// Извлекаем spaceId из query параметров
	if spaceIDStr := r.URL.Query().Get("spaceId"); spaceIDStr != "" {
		spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /fusions - Invalid space ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpaceID)
			return
		}
		req.SpaceID = &spaceID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /fusions - Failed to list fusions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fusions - Fusions retrieved successfully: count=%d", len(result.Fusions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
