package create_fusion

import (
	"context"

	createFusion "github.com/m04kA/USM-SpaceService/internal/usecase/create_fusion"
)

type CreateFusionUseCase interface {
	Execute(ctx context.Context, req *createFusion.Request) (*createFusion.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
