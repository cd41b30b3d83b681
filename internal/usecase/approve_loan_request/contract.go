package approve_loan_request

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	checkAvailability "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
)

// LoanRepository интерфейс репозитория заявок
type LoanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LoanRequest, error)
	Decide(ctx context.Context, id int64, status domain.LoanStatus, comment *string) error
}

// AvailabilityChecker интерфейс проверки доступности помещения
// Единый путь проверки пересечений для регулярного расписания и аренды
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
