package create_fusion

import (
	"errors"
	"net/http"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	createFusion "github.com/m04kA/USM-SpaceService/internal/usecase/create_fusion"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInsufficientGroups   = "для объединения требуется минимум две различные группы"
	msgGroupNotFound        = "группа не найдена"
	msgInactiveGroup        = "группа неактивна"
	msgNoCommonSubject      = "у выбранных групп нет общего предмета"
	msgSpaceNotFound        = "помещение не найдено"
	msgInsufficientCapacity = "вместимость помещения меньше суммарной численности групп"
	msgInvalidFusionRequest = "некорректные параметры объединения"
)

type Handler struct {
	useCase CreateFusionUseCase
	logger  Logger
}

func NewHandler(useCase CreateFusionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/fusions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFusionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fusions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createFusion.ErrInsufficientGroups):
			h.logger.Warn("POST /fusions - Insufficient groups: groups=%v", req.GroupIDs)
			handlers.RespondBadRequest(w, msgInsufficientGroups)

		case errors.Is(err, createFusion.ErrGroupNotFound):
			h.logger.Warn("POST /fusions - Group not found: groups=%v", req.GroupIDs)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, createFusion.ErrInactiveGroup):
			h.logger.Warn("POST /fusions - Inactive group: groups=%v", req.GroupIDs)
			handlers.RespondError(w, http.StatusConflict, msgInactiveGroup)

		case errors.Is(err, createFusion.ErrNoCommonSubject):
			h.logger.Warn("POST /fusions - No common subject: groups=%v, subject_id=%d", req.GroupIDs, req.SubjectID)
			handlers.RespondError(w, http.StatusConflict, msgNoCommonSubject)

		case errors.Is(err, createFusion.ErrSpaceNotFound):
			h.logger.Warn("POST /fusions - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createFusion.ErrInsufficientCapacity):
			h.logger.Warn("POST /fusions - Insufficient capacity: space_id=%d, groups=%v", req.SpaceID, req.GroupIDs)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientCapacity)

		case errors.Is(err, createFusion.ErrInvalidInput):
			h.logger.Warn("POST /fusions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFusionRequest)

		default:
			h.logger.Error("POST /fusions - Failed to create fusion: space_id=%d, groups=%v, error=%v",
				req.SpaceID, req.GroupIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /fusions - Fusion created successfully: fusion_id=%d, space_id=%d, headcount=%d",
		result.ID, result.SpaceID, result.AggregateHeadcount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
