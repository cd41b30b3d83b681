package submit_loan_request

import (
	"context"
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// LoanRepository интерфейс репозитория заявок
type LoanRepository interface {
	Create(ctx context.Context, request *domain.LoanRequest) (*domain.LoanRequest, error)
}

// CampusServiceClient интерфейс клиента для CampusService
type CampusServiceClient interface {
	GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
