package aggregate_occupancy

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// CampusServiceClient интерфейс клиента для CampusService
type CampusServiceClient interface {
	GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error)
	ListSpaces(ctx context.Context) ([]*domain.Space, error)
	ListSessions(ctx context.Context, filter domain.SessionsFilter) ([]*domain.ScheduledSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
