package get_occupancy_report

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/domain"
	aggregateOccupancy "github.com/m04kA/USM-SpaceService/internal/usecase/aggregate_occupancy"
)

const (
	msgInvalidSpaceIDs = "некорректный список ID помещений"
	msgInvalidWindow   = "некорректное отчетное окно, ожидается положительное число часов"
	msgSpaceNotFound   = "помещение не найдено"
)

type Handler struct {
	useCase AggregateOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase AggregateOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/occupancy
// Query params: spaceIds (optional, comma-separated), windowHours (optional, default 48)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем spaceIds из query параметров
	var spaceIDs []int64
	if spaceIDsStr := query.Get("spaceIds"); spaceIDsStr != "" {
		for _, part := range strings.Split(spaceIDsStr, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				h.logger.Warn("GET /reports/occupancy - Invalid space IDs: %v", err)
				handlers.RespondBadRequest(w, msgInvalidSpaceIDs)
				return
			}
			spaceIDs = append(spaceIDs, id)
		}
	}

	// Извлекаем windowHours из query параметров
	windowHours := float64(domain.DefaultReportingWindowHours)
	if windowStr := query.Get("windowHours"); windowStr != "" {
		parsed, err := strconv.ParseFloat(windowStr, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /reports/occupancy - Invalid window: %s", windowStr)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		windowHours = parsed
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &aggregateOccupancy.Request{
		SpaceIDs:    spaceIDs,
		WindowHours: windowHours,
	})
	if err != nil {
		switch {
		case errors.Is(err, aggregateOccupancy.ErrSpaceNotFound):
			h.logger.Warn("GET /reports/occupancy - Space not found: spaces=%v", spaceIDs)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, aggregateOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /reports/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /reports/occupancy - Failed to build report: spaces=%v, error=%v", spaceIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /reports/occupancy - Report built successfully: records=%d, window=%.1fh",
		len(result.Records), windowHours)
	handlers.RespondJSON(w, http.StatusOK, response)
}
