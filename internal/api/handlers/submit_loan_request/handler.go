package submit_loan_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/USM-SpaceService/internal/api/handlers"
	submitLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/submit_loan_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSpaceNotFound      = "помещение не найдено"
	msgInvalidInterval    = "некорректный интервал: начало должно быть раньше конца"
	msgDateInPast         = "дата аренды уже прошла"
	msgInvalidLoanRequest = "некорректные параметры заявки"
)

type Handler struct {
	useCase SubmitLoanRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitLoanRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/loan-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitLoanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /loan-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /loan-requests - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, submitLoanRequest.ErrSpaceNotFound):
			h.logger.Warn("POST /loan-requests - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, submitLoanRequest.ErrInvalidInterval):
			h.logger.Warn("POST /loan-requests - Invalid interval: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, submitLoanRequest.ErrDateInPast):
			h.logger.Warn("POST /loan-requests - Date in past: space_id=%d, date=%s", req.SpaceID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitLoanRequest.ErrInvalidInput):
			h.logger.Warn("POST /loan-requests - Invalid input: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidLoanRequest)

		default:
			h.logger.Error("POST /loan-requests - Failed to submit request: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /loan-requests - Request submitted successfully: request_id=%d, space_id=%d",
		result.ID, result.SpaceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
