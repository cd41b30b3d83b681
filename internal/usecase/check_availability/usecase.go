package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
	"github.com/m04kA/USM-SpaceService/pkg/ptr"
)

// UseCase use case проверки доступности помещения на временное окно
// Чистая операция чтения: каталог занятий не изменяется
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

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: space=%d, weekday=%s, window=%s-%s",
		req.SpaceID, req.Weekday, req.StartTime, req.EndTime)

	// 1. Валидация входных данных и запрошенного окна
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование помещения
	if _, err := uc.campusClient.GetSpace(ctx, req.SpaceID); err != nil {
		if errors.Is(err, campusClient.ErrSpaceNotFound) {
			uc.logger.Warn("CheckAvailability: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Получаем занятия каталога для помещения и дня недели
	// Пустой список легитимен: помещение без занятий свободно
	sessions, err := uc.campusClient.ListSessions(ctx, domain.SessionsFilter{
		SpaceID: ptr.Ptr(req.SpaceID),
		Weekday: ptr.Ptr(req.Weekday),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list sessions for space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
	}

	// 4. Ищем первое блокирующее занятие в порядке каталога
	blocking := findBlockingSession(window, sessions)

	resp := &Response{
		SpaceID:   req.SpaceID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Free:      blocking == nil,
	}

	if blocking != nil {
		resp.Occupant = occupantFromSession(blocking)
		uc.logger.Info("CheckAvailability: space=%d occupied by session id=%d (%s, %s-%s)",
			req.SpaceID, blocking.ID, blocking.GroupCode, blocking.StartTime, blocking.EndTime)
	} else {
		uc.logger.Info("CheckAvailability: space=%d is free for %s %s-%s",
			req.SpaceID, req.Weekday, req.StartTime, req.EndTime)
	}

	return resp, nil
}
