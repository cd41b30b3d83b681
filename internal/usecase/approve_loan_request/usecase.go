package approve_loan_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	loanRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/loan"
	checkAvailability "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
)

// UseCase use case одобрения заявки на аренду помещения
// Перед переходом выполняется справочная проверка доступности:
// конфликт с расписанием показывается оператору, но не блокирует одобрение.
// Переход статуса защищен compare-and-swap в сериализуемой транзакции:
// при гонке approve/reject побеждает ровно одно решение
type UseCase struct {
	loanRepo  LoanRepository
	checker   AvailabilityChecker
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loanRepo LoanRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		loanRepo:  loanRepo,
		checker:   checker,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет одобрение заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveLoanRequest: request id=%d", req.RequestID)

	if req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxAdminCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	// 1. Получаем заявку
	request, err := uc.loanRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, loanRepo.ErrRequestNotFound) {
			uc.logger.Warn("ApproveLoanRequest: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("ApproveLoanRequest: repository error for request id=%d: %v", req.RequestID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 2. Из терминальных статусов переходов нет
	if !request.IsPending() {
		uc.logger.Warn("ApproveLoanRequest: request id=%d already decided, status=%s",
			request.ID, request.Status)
		return nil, ErrInvalidStateTransition
	}

	// 3. Справочная проверка доступности на день недели заявки
	// Внешний вызов выполняется до транзакции перехода статуса
	conflict, err := uc.adviseOnConflict(ctx, request)
	if err != nil {
		// Недоступность проверки не должна блокировать решение оператора
		uc.logger.Error("ApproveLoanRequest: availability check failed for request id=%d: %v",
			request.ID, err)
	}

	// 4. Переход pending -> approved под блокировкой строки
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.loanRepo.Decide(txCtx, request.ID, domain.LoanStatusApproved, req.Comment); err != nil {
			if errors.Is(err, loanRepo.ErrNotPending) {
				return ErrInvalidStateTransition
			}
			return fmt.Errorf("%w: failed to approve request: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidStateTransition) {
			uc.logger.Warn("ApproveLoanRequest: lost decision race for request id=%d", request.ID)
		}
		return nil, err
	}

	// 5. Перечитываем заявку с заполненными полями решения
	decided, err := uc.loanRepo.GetByID(ctx, request.ID)
	if err != nil {
		uc.logger.Error("ApproveLoanRequest: failed to reload request id=%d: %v", request.ID, err)
		return nil, fmt.Errorf("%w: failed to reload request: %v", ErrInternal, err)
	}

	uc.logger.Info("ApproveLoanRequest: successfully approved request id=%d (conflict=%v)",
		decided.ID, conflict != nil)

	return &Response{
		ID:           decided.ID,
		SpaceID:      decided.SpaceID,
		Date:         decided.Date,
		StartTime:    decided.StartTime,
		EndTime:      decided.EndTime,
		Status:       string(decided.Status),
		AdminComment: decided.AdminComment,
		DecidedAt:    decided.DecidedAt,
		Conflict:     conflict,
	}, nil
}

// adviseOnConflict проверяет пересечение окна заявки с каталогом занятий
// через общий путь проверки доступности
func (uc *UseCase) adviseOnConflict(ctx context.Context, request *domain.LoanRequest) (*Conflict, error) {
	window := request.Interval()
	availability, err := uc.checker.Execute(ctx, &checkAvailability.Request{
		SpaceID:   request.SpaceID,
		Weekday:   window.Weekday,
		StartTime: window.Start,
		EndTime:   window.End,
	})
	if err != nil {
		return nil, err
	}

	if availability.Free {
		return nil, nil
	}

	uc.logger.Warn("ApproveLoanRequest: request id=%d window overlaps session id=%d (%s)",
		request.ID, availability.Occupant.SessionID, availability.Occupant.GroupCode)

	return conflictFromOccupant(availability.Occupant), nil
}
