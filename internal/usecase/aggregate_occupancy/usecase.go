package aggregate_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
	"github.com/m04kA/USM-SpaceService/pkg/ptr"
)

// UseCase use case сводки загруженности помещений
// Чистое чтение каталога занятий для дашбордов и отчетов;
// форматирование выгрузок остается за вызывающим
type UseCase struct {
	campusClient CampusServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(campusClient CampusServiceClient, logger Logger) *UseCase {
	return &UseCase{
		campusClient: campusClient,
		logger:       logger,
	}
}

// Execute строит сводки загруженности по помещениям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AggregateOccupancy: spaces=%v, window=%.1fh", req.SpaceIDs, req.WindowHours)

	if req.WindowHours <= 0 {
		uc.logger.Warn("AggregateOccupancy: non-positive window %.1f", req.WindowHours)
		return nil, fmt.Errorf("%w: windowHours must be positive", ErrInvalidInput)
	}

	// 1. Определяем множество помещений для отчета
	spaces, err := uc.resolveSpaces(ctx, req.SpaceIDs)
	if err != nil {
		return nil, err
	}

	// 2. Строим сводку по каждому помещению
	records := make([]*domain.OccupancyRecord, 0, len(spaces))
	for _, space := range spaces {
		sessions, err := uc.campusClient.ListSessions(ctx, domain.SessionsFilter{
			SpaceID: ptr.Ptr(space.ID),
		})
		if err != nil {
			uc.logger.Error("AggregateOccupancy: failed to list sessions for space id=%d: %v", space.ID, err)
			return nil, fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
		}

		record, err := buildRecord(space, sessions, req.WindowHours)
		if err != nil {
			uc.logger.Error("AggregateOccupancy: failed to build record for space id=%d: %v", space.ID, err)
			return nil, fmt.Errorf("%w: failed to build record: %v", ErrInternal, err)
		}

		records = append(records, record)
	}

	uc.logger.Info("AggregateOccupancy: built %d records", len(records))

	return &Response{
		WindowHours: req.WindowHours,
		Records:     records,
	}, nil
}

// resolveSpaces возвращает явно запрошенные помещения либо все помещения кампуса
func (uc *UseCase) resolveSpaces(ctx context.Context, spaceIDs []int64) ([]*domain.Space, error) {
	if len(spaceIDs) == 0 {
		spaces, err := uc.campusClient.ListSpaces(ctx)
		if err != nil {
			uc.logger.Error("AggregateOccupancy: failed to list spaces: %v", err)
			return nil, fmt.Errorf("%w: failed to list spaces: %v", ErrInternal, err)
		}
		return spaces, nil
	}

	spaces := make([]*domain.Space, 0, len(spaceIDs))
	for _, id := range spaceIDs {
		space, err := uc.campusClient.GetSpace(ctx, id)
		if err != nil {
			if errors.Is(err, campusClient.ErrSpaceNotFound) {
				uc.logger.Warn("AggregateOccupancy: space id=%d not found", id)
				return nil, fmt.Errorf("%w: id=%d", ErrSpaceNotFound, id)
			}
			uc.logger.Error("AggregateOccupancy: failed to get space id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
		spaces = append(spaces, space)
	}

	return spaces, nil
}
