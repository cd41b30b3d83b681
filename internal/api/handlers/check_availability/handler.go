package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	checkAvailability "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
)

const (
	msgInvalidSpaceID  = "некорректный ID помещения"
	msgMissingWeekday  = "день недели обязателен"
	msgMissingInterval = "параметры start и end обязательны"
	msgInvalidParams   = "некорректные параметры интервала, ожидается день недели и время HH:MM"
	msgInvalidInterval = "некорректный интервал: начало должно быть раньше конца"
	msgSpaceNotFound   = "помещение не найдено"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/availability
// Query params: weekday (required), start (required, HH:MM), end (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем spaceId из URL
	spaceIDStr := vars["spaceId"]
	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Извлекаем параметры интервала из query
	weekdayStr := r.URL.Query().Get("weekday")
	if weekdayStr == "" {
		h.logger.Warn("GET /spaces/{id}/availability - Missing weekday: space_id=%d", spaceID)
		handlers.RespondBadRequest(w, msgMissingWeekday)
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /spaces/{id}/availability - Missing interval bounds: space_id=%d", spaceID)
		handlers.RespondBadRequest(w, msgMissingInterval)
		return
	}

	// Формируем запрос к use case (с парсингом дня недели и времени)
	useCaseReq, err := ToUseCaseRequest(spaceID, weekdayStr, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Failed to parse request: space_id=%d, error=%v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/availability - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInterval):
			h.logger.Warn("GET /spaces/{id}/availability - Invalid interval: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/availability - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /spaces/{id}/availability - Failed to check availability: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /spaces/{id}/availability - Checked successfully: space_id=%d, free=%t", spaceID, result.Free)
	handlers.RespondJSON(w, http.StatusOK, response)
}
