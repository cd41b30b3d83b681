package models

import (
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

// Request модели

// ListFusionsRequest запрос на получение списка объединений
type ListFusionsRequest struct {
	SpaceID *int64 `json:"spaceId,omitempty"` // Фильтр по помещению (опционально)
}

// Response модели

// FusionResponse ответ с данными объединения групп
type FusionResponse struct {
	ID                 int64   `json:"id"`
	SpaceID            int64   `json:"spaceId"`
	SubjectID          int64   `json:"subjectId"`
	GroupIDs           []int64 `json:"groupIds"`
	AggregateHeadcount int     `json:"aggregateHeadcount"`
	ProgramIDs         []int64 `json:"programIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FusionListResponse ответ со списком объединений
type FusionListResponse struct {
	Fusions []FusionResponse `json:"fusions"`
}

// Методы конвертации

// FromDomainFusion конвертирует domain модель в DTO
func FromDomainFusion(f *domain.Fusion) *FusionResponse {
	if f == nil {
		return nil
	}

	return &FusionResponse{
		ID:                 f.ID,
		SpaceID:            f.SpaceID,
		SubjectID:          f.SubjectID,
		GroupIDs:           f.GroupIDs,
		AggregateHeadcount: f.AggregateHeadcount,
		ProgramIDs:         f.ProgramIDs,
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

// FromDomainFusionList конвертирует список domain моделей в DTO
func FromDomainFusionList(fusions []*domain.Fusion) *FusionListResponse {
	responses := make([]FusionResponse, 0, len(fusions))
	for _, fusion := range fusions {
		responses = append(responses, *FromDomainFusion(fusion))
	}
	return &FusionListResponse{Fusions: responses}
}
