package submit_loan_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
)

// UseCase use case подачи заявки на разовую аренду помещения
// Заявка сохраняется со статусом pending; после подачи заявитель
// изменить её не может
type UseCase struct {
	loanRepo     LoanRepository
	campusClient CampusServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loanRepo LoanRepository,
	campusClient CampusServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		loanRepo:     loanRepo,
		campusClient: campusClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет подачу заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitLoanRequest: requester=%s, space=%d, date=%s, window=%s-%s",
		req.RequesterName, req.SpaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("SubmitLoanRequest: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование помещения
	if _, err := uc.campusClient.GetSpace(ctx, req.SpaceID); err != nil {
		if errors.Is(err, campusClient.ErrSpaceNotFound) {
			uc.logger.Warn("SubmitLoanRequest: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("SubmitLoanRequest: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Сохраняем заявку со статусом pending
	request := &domain.LoanRequest{
		RequesterName:      req.RequesterName,
		RequesterContact:   req.RequesterContact,
		SpaceID:            req.SpaceID,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		EventType:          req.EventType,
		ExpectedAttendance: req.ExpectedAttendance,
		Resources:          req.Resources,
	}

	created, err := uc.loanRepo.Create(ctx, request)
	if err != nil {
		uc.logger.Error("SubmitLoanRequest: failed to create request: %v", err)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitLoanRequest: successfully created request id=%d", created.ID)

	return &Response{
		ID:                 created.ID,
		RequesterName:      created.RequesterName,
		RequesterContact:   created.RequesterContact,
		SpaceID:            created.SpaceID,
		Date:               created.Date,
		StartTime:          created.StartTime,
		EndTime:            created.EndTime,
		EventType:          created.EventType,
		ExpectedAttendance: created.ExpectedAttendance,
		Resources:          created.Resources,
		Status:             string(created.Status),
		SubmittedAt:        created.SubmittedAt,
	}, nil
}
