package reject_loan_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	"github.com/m04kA/USM-SpaceService/internal/api/middleware"
	"github.com/m04kA/USM-SpaceService/internal/service/loans"
	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingReason      = "причина отклонения обязательна"
	msgNotFound           = "заявка не найдена"
	msgAlreadyDecided     = "заявка уже решена"
	msgInvalidRejection   = "некорректные параметры отклонения"
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

// Handle PATCH /api/v1/loan-requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Решение принимает аутентифицированный администратор
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /loan-requests/{id}/reject - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем requestId из URL
	vars := mux.Vars(r)
	requestIDStr := vars["requestId"]

	requestID, err := strconv.ParseInt(requestIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /loan-requests/{id}/reject - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req models.RejectLoanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /loan-requests/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reject(r.Context(), requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, loans.ErrMissingRejectionReason):
			h.logger.Warn("PATCH /loan-requests/{id}/reject - Missing rejection reason: request_id=%d", requestID)
			handlers.RespondBadRequest(w, msgMissingReason)

		case errors.Is(err, loans.ErrRequestNotFound):
			h.logger.Warn("PATCH /loan-requests/{id}/reject - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, loans.ErrInvalidStateTransition):
			h.logger.Warn("PATCH /loan-requests/{id}/reject - Already decided: request_id=%d", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, loans.ErrInvalidInput):
			h.logger.Warn("PATCH /loan-requests/{id}/reject - Invalid input: request_id=%d, error=%v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidRejection)

		default:
			h.logger.Error("PATCH /loan-requests/{id}/reject - Failed to reject: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /loan-requests/{id}/reject - Request rejected successfully: request_id=%d, user_id=%d",
		requestID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
