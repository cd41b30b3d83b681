package approve_loan_request

import (
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	approveLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/approve_loan_request"
)

// ApproveLoanRequest HTTP request model
type ApproveLoanRequest struct {
	Comment *string `json:"comment,omitempty"`
}

// ConflictResponse справочная информация о пересечении с расписанием
type ConflictResponse struct {
	SessionID   int64  `json:"sessionId"`
	GroupCode   string `json:"groupCode"`
	SubjectName string `json:"subjectName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// ApprovedLoanResponse HTTP response model
type ApprovedLoanResponse struct {
	ID           int64             `json:"id"`
	SpaceID      int64             `json:"spaceId"`
	Date         string            `json:"date"`
	StartTime    string            `json:"startTime"`
	EndTime      string            `json:"endTime"`
	Status       string            `json:"status"`
	AdminComment *string           `json:"adminComment,omitempty"`
	DecidedAt    *string           `json:"decidedAt,omitempty"`
	Conflict     *ConflictResponse `json:"conflict,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApproveLoanRequest) ToUseCaseRequest(requestID int64) *approveLoanRequest.Request {
	return &approveLoanRequest.Request{
		RequestID: requestID,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveLoanRequest.Response) *ApprovedLoanResponse {
	out := &ApprovedLoanResponse{
		ID:           resp.ID,
		SpaceID:      resp.SpaceID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		AdminComment: resp.AdminComment,
	}

	if resp.DecidedAt != nil {
		decidedAt := resp.DecidedAt.Format(time.RFC3339)
		out.DecidedAt = &decidedAt
	}

	if resp.Conflict != nil {
		out.Conflict = &ConflictResponse{
			SessionID:   resp.Conflict.SessionID,
			GroupCode:   resp.Conflict.GroupCode,
			SubjectName: resp.Conflict.SubjectName,
			StartTime:   resp.Conflict.StartTime.String(),
			EndTime:     resp.Conflict.EndTime.String(),
		}
	}

	return out
}
