package create_fusion

import (
	"time"

	createFusion "github.com/m04kA/USM-SpaceService/internal/usecase/create_fusion"
)

// CreateFusionRequest HTTP request model
type CreateFusionRequest struct {
	GroupIDs  []int64 `json:"groupIds"`
	SubjectID int64   `json:"subjectId"`
	SpaceID   int64   `json:"spaceId"`
}

// FusionResponse HTTP response model
type FusionResponse struct {
	ID                 int64   `json:"id"`
	SpaceID            int64   `json:"spaceId"`
	SubjectID          int64   `json:"subjectId"`
	GroupIDs           []int64 `json:"groupIds"`
	AggregateHeadcount int     `json:"aggregateHeadcount"`
	ProgramIDs         []int64 `json:"programIds"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateFusionRequest) ToUseCaseRequest() *createFusion.Request {
	return &createFusion.Request{
		GroupIDs:  r.GroupIDs,
		SubjectID: r.SubjectID,
		SpaceID:   r.SpaceID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFusion.Response) *FusionResponse {
	return &FusionResponse{
		ID:                 resp.ID,
		SpaceID:            resp.SpaceID,
		SubjectID:          resp.SubjectID,
		GroupIDs:           resp.GroupIDs,
		AggregateHeadcount: resp.AggregateHeadcount,
		ProgramIDs:         resp.ProgramIDs,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
