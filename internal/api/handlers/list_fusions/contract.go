package list_fusions

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/service/fusions/models"
)

type FusionService interface {
	List(ctx context.Context, req *models.ListFusionsRequest) (*models.FusionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
