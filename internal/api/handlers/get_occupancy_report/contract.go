package get_occupancy_report

import (
	"context"

	aggregateOccupancy "github.com/m04kA/USM-SpaceService/internal/usecase/aggregate_occupancy"
)

type AggregateOccupancyUseCase interface {
	Execute(ctx context.Context, req *aggregateOccupancy.Request) (*aggregateOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
