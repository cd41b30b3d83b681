package loans

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	loanRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/loan"
	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
	"github.com/m04kA/USM-SpaceService/pkg/ptr"
)

// Service сервис для работы с заявками на аренду помещений
type Service struct {
	loanRepo LoanRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(loanRepo LoanRepository, logger Logger) *Service {
	return &Service{
		loanRepo: loanRepo,
		logger:   logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LoanRequestResponse, error) {
	s.logger.Info("GetByID: fetching loan request id=%d", id)

	request, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, loanRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: loan request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLoanRequest(request), nil
}

// List получает заявки с фильтрацией по помещению, статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListLoanRequestsRequest) (*models.LoanRequestListResponse, error) {
	s.logger.Info("List: fetching loan requests, space=%v, status=%v", req.SpaceID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	requests, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d loan requests", len(requests))
	return models.FromDomainLoanRequestList(requests), nil
}

// Reject отклоняет заявку
// Комментарий обязателен: заявитель должен видеть причину отказа.
// Переход защищен compare-and-swap по статусу: повторное решение
// или проигрыш гонки дает ErrInvalidStateTransition
func (s *Service) Reject(ctx context.Context, id int64, req *models.RejectLoanRequest) (*models.LoanRequestResponse, error) {
	s.logger.Info("Reject: rejecting loan request id=%d", id)

	if req.Comment == "" {
		s.logger.Warn("Reject: missing rejection reason for request id=%d", id)
		return nil, ErrMissingRejectionReason
	}
	if len(req.Comment) > domain.MaxAdminCommentLength {
		s.logger.Warn("Reject: comment too long for request id=%d", id)
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	request, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, loanRepo.ErrRequestNotFound) {
			s.logger.Warn("Reject: loan request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("Reject: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	if request.IsDecided() {
		s.logger.Warn("Reject: loan request id=%d already decided, status=%s", id, request.Status)
		return nil, ErrInvalidStateTransition
	}

	if err := s.loanRepo.Decide(ctx, id, domain.LoanStatusRejected, ptr.Ptr(req.Comment)); err != nil {
		if errors.Is(err, loanRepo.ErrNotPending) {
			s.logger.Warn("Reject: lost decision race for request id=%d", id)
			return nil, ErrInvalidStateTransition
		}
		s.logger.Error("Reject: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	decided, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Reject: failed to reload request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reject - failed to reload request: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected loan request id=%d", id)
	return models.FromDomainLoanRequest(decided), nil
}
