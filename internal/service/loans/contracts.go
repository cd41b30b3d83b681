package loans

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// LoanRepository интерфейс репозитория заявок
type LoanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LoanRequest, error)
	List(ctx context.Context, filter domain.LoanRequestsFilter) ([]*domain.LoanRequest, error)
	Decide(ctx context.Context, id int64, status domain.LoanStatus, comment *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
