package create_fusion

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	academicClient "github.com/m04kA/USM-SpaceService/internal/integrations/academicservice"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
)

// UseCase use case объединения групп по общему предмету в одно помещение
// Проверки выполняются по порядку с остановкой на первой ошибке.
// Создание объединения не создает занятие в расписании: эта связка,
// если нужна, остается за сервисом составления расписания
type UseCase struct {
	fusionRepo     FusionRepository
	academicClient AcademicServiceClient
	campusClient   CampusServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fusionRepo FusionRepository,
	academicClient AcademicServiceClient,
	campusClient CampusServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		fusionRepo:     fusionRepo,
		academicClient: academicClient,
		campusClient:   campusClient,
		logger:         logger,
	}
}

// Execute выполняет валидацию и создание объединения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFusion: groups=%v, subject=%d, space=%d",
		req.GroupIDs, req.SubjectID, req.SpaceID)

	// 1. Валидация входных данных (минимум две различных группы)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateFusion: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем все группы
	groups, err := uc.academicClient.ListGroups(ctx, req.GroupIDs)
	if err != nil {
		if errors.Is(err, academicClient.ErrGroupNotFound) {
			uc.logger.Warn("CreateFusion: some of groups %v not found", req.GroupIDs)
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("CreateFusion: failed to list groups %v: %v", req.GroupIDs, err)
		return nil, fmt.Errorf("%w: failed to list groups: %v", ErrInternal, err)
	}

	// Восстанавливаем порядок выбора и отбрасываем дубликаты идентификаторов.
	// Каждый запрошенный идентификатор обязан разрешиться: частичный ответ
	// реестра групп трактуется как отсутствующая группа
	groups = orderGroupsByRequest(req.GroupIDs, groups)
	if len(groups) != countDistinctIDs(req.GroupIDs) {
		uc.logger.Warn("CreateFusion: resolved only %d of %d distinct groups %v",
			len(groups), countDistinctIDs(req.GroupIDs), req.GroupIDs)
		return nil, ErrGroupNotFound
	}

	// 3. Все группы должны быть активны
	if inactive := findInactiveGroup(groups); inactive != nil {
		uc.logger.Warn("CreateFusion: group id=%d (%s) is inactive", inactive.ID, inactive.Code)
		return nil, fmt.Errorf("%w: group %s (id=%d)", ErrInactiveGroup, inactive.Code, inactive.ID)
	}

	// 4. Пересечение списков предметов должно быть непустым,
	// и предложенный предмет обязан входить в пересечение
	common := intersectSubjects(groups)
	if len(common) == 0 || !containsSubject(common, req.SubjectID) {
		uc.logger.Warn("CreateFusion: no common subject %d for groups %v", req.SubjectID, req.GroupIDs)
		return nil, ErrNoCommonSubject
	}

	// 5. Суммарная численность групп
	headcount := aggregateHeadcount(groups)

	// 6. Вместимость целевого помещения должна покрывать суммарную численность
	space, err := uc.campusClient.GetSpace(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, campusClient.ErrSpaceNotFound) {
			uc.logger.Warn("CreateFusion: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateFusion: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	if !space.CanFit(headcount) {
		shortfall := headcount - space.Capacity
		uc.logger.Warn("CreateFusion: space id=%d capacity=%d < headcount=%d (short by %d)",
			space.ID, space.Capacity, headcount, shortfall)
		return nil, fmt.Errorf("%w: capacity %d, headcount %d, short by %d",
			ErrInsufficientCapacity, space.Capacity, headcount, shortfall)
	}

	// 7. Собираем и сохраняем объединение
	fusion := &domain.Fusion{
		SpaceID:            space.ID,
		SubjectID:          req.SubjectID,
		GroupIDs:           groupIDsOf(groups),
		AggregateHeadcount: headcount,
		ProgramIDs:         distinctPrograms(groups),
	}

	created, err := uc.fusionRepo.Create(ctx, fusion)
	if err != nil {
		uc.logger.Error("CreateFusion: failed to create fusion: %v", err)
		return nil, fmt.Errorf("%w: failed to create fusion: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateFusion: successfully created fusion id=%d (groups=%v, headcount=%d)",
		created.ID, created.GroupIDs, created.AggregateHeadcount)

	return &Response{
		ID:                 created.ID,
		SpaceID:            created.SpaceID,
		SubjectID:          created.SubjectID,
		GroupIDs:           created.GroupIDs,
		AggregateHeadcount: created.AggregateHeadcount,
		ProgramIDs:         created.ProgramIDs,
		CreatedAt:          created.CreatedAt,
	}, nil
}

// groupIDsOf возвращает идентификаторы групп в их текущем порядке
func groupIDsOf(groups []*domain.Group) []int64 {
	ids := make([]int64, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.ID)
	}
	return ids
}
