package list_loan_requests

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/domain"
	"github.com/m04kA/USM-SpaceService/internal/service/loans"
	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

const (
	msgInvalidSpaceID = "некорректный ID помещения"
	msgInvalidStatus  = "некорректный статус заявки"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter  = "некорректные параметры фильтра"
)

type Handler struct {
	service LoanService
	logger  Logger
}

func NewHandler(service LoanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/loan-requests
// Query params: spaceId, status, startDate, endDate (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListLoanRequestsRequest{}
	query := r.URL.Query()

	// Извлекаем spaceId из query параметров
	if spaceIDStr := query.Get("spaceId"); spaceIDStr != "" {
		spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /loan-requests - Invalid space ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpaceID)
			return
		}
		req.SpaceID = &spaceID
	}

	// Извлекаем status из query параметров
	if statusStr := query.Get("status"); statusStr != "" {
		if _, err := models.ToDomainLoanStatus(statusStr); err != nil {
			h.logger.Warn("GET /loan-requests - Invalid status filter: status=%s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		req.Status = &statusStr
	}

	// Извлекаем границы периода из query параметров
	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /loan-requests - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /loan-requests - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, loans.ErrInvalidInput):
			h.logger.Warn("GET /loan-requests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /loan-requests - Failed to list requests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /loan-requests - Requests retrieved successfully: count=%d", len(result.Requests))
	handlers.RespondJSON(w, http.StatusOK, result)
}
