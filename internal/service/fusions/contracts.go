package fusions

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// FusionRepository интерфейс репозитория объединений групп
type FusionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Fusion, error)
	List(ctx context.Context, spaceID *int64) ([]*domain.Fusion, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
