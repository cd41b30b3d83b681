package create_fusion

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// FusionRepository интерфейс репозитория объединений
type FusionRepository interface {
	Create(ctx context.Context, fusion *domain.Fusion) (*domain.Fusion, error)
}

// AcademicServiceClient интерфейс клиента для AcademicService
type AcademicServiceClient interface {
	ListGroups(ctx context.Context, groupIDs []int64) ([]*domain.Group, error)
}

// CampusServiceClient интерфейс клиента для CampusService
type CampusServiceClient interface {
	GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
