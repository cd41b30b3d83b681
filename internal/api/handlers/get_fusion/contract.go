package get_fusion

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/service/fusions/models"
)

type FusionService interface {
	GetByID(ctx context.Context, id int64) (*models.FusionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
