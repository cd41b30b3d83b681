package fusions

import (
	"context"
	"errors"
	"fmt"

	fusionRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/fusion"
	"github.com/m04kA/USM-SpaceService/internal/service/fusions/models"
)

// Service сервис для работы с объединениями групп
type Service struct {
	fusionRepo FusionRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса объединений
func NewService(fusionRepo FusionRepository, logger Logger) *Service {
	return &Service{
		fusionRepo: fusionRepo,
		logger:     logger,
	}
}

// GetByID получает объединение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FusionResponse, error) {
	s.logger.Info("GetByID: fetching fusion id=%d", id)

	fusion, err := s.fusionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fusionRepo.ErrFusionNotFound) {
			s.logger.Warn("GetByID: fusion id=%d not found", id)
			return nil, ErrFusionNotFound
		}
		s.logger.Error("GetByID: repository error for fusion id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFusion(fusion), nil
}

// List получает объединения с фильтрацией по помещению
func (s *Service) List(ctx context.Context, req *models.ListFusionsRequest) (*models.FusionListResponse, error) {
	s.logger.Info("List: fetching fusions, space=%v", req.SpaceID)

	fusions, err := s.fusionRepo.List(ctx, req.SpaceID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d fusions", len(fusions))
	return models.FromDomainFusionList(fusions), nil
}

// Delete удаляет объединение
// Расписание каталога не трогаем: занятия объединения остаются
// на стороне кампус-сервиса и чистятся его владельцами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting fusion id=%d", id)

	if err := s.fusionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, fusionRepo.ErrFusionNotFound) {
			s.logger.Warn("Delete: fusion id=%d not found", id)
			return ErrFusionNotFound
		}
		s.logger.Error("Delete: repository error for fusion id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted fusion id=%d", id)
	return nil
}
