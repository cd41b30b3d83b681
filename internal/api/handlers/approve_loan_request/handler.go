package approve_loan_request

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/api/middleware"
	approveLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/approve_loan_request"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "заявка не найдена"
	msgAlreadyDecided     = "заявка уже решена"
	msgInvalidApproval    = "некорректные параметры одобрения"
)

type Handler struct {
	useCase ApproveLoanRequestUseCase
	logger  Logger
}

func NewHandler(useCase ApproveLoanRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/loan-requests/{requestId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Решение принимает аутентифицированный администратор
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /loan-requests/{id}/approve - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем requestId из URL
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /loan-requests/{id}/approve - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Тело опционально: комментарий при одобрении не обязателен
	var req ApproveLoanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /loan-requests/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(requestID))
	if err != nil {
		switch {
		case errors.Is(err, approveLoanRequest.ErrRequestNotFound):
			h.logger.Warn("PATCH /loan-requests/{id}/approve - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveLoanRequest.ErrInvalidStateTransition):
			h.logger.Warn("PATCH /loan-requests/{id}/approve - Already decided: request_id=%d", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, approveLoanRequest.ErrInvalidInput):
			h.logger.Warn("PATCH /loan-requests/{id}/approve - Invalid input: request_id=%d, error=%v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidApproval)

		default:
			h.logger.Error("PATCH /loan-requests/{id}/approve - Failed to approve: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /loan-requests/{id}/approve - Request approved successfully: request_id=%d, user_id=%d, conflict=%t",
		requestID, userID, result.Conflict != nil)
	handlers.RespondJSON(w, http.StatusOK, response)
}
