package submit_loan_request

import (
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	submitLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/submit_loan_request"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

// SubmitLoanRequest HTTP request model
type SubmitLoanRequest struct {
	RequesterName      string   `json:"requesterName"`
	RequesterContact   string   `json:"requesterContact"`
	SpaceID            int64    `json:"spaceId"`
	Date               string   `json:"date"`      // "2025-10-15"
	StartTime          string   `json:"startTime"` // "10:00"
	EndTime            string   `json:"endTime"`   // "12:00"
	EventType          string   `json:"eventType"`
	ExpectedAttendance int      `json:"expectedAttendance"`
	Resources          []string `json:"resources,omitempty"`
}

// LoanRequestResponse HTTP response model
type LoanRequestResponse struct {
	ID                 int64    `json:"id"`
	RequesterName      string   `json:"requesterName"`
	RequesterContact   string   `json:"requesterContact"`
	SpaceID            int64    `json:"spaceId"`
	Date               string   `json:"date"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	EventType          string   `json:"eventType"`
	ExpectedAttendance int      `json:"expectedAttendance"`
	Resources          []string `json:"resources"`
	Status             string   `json:"status"`
	SubmittedAt        string   `json:"submittedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitLoanRequest) ToUseCaseRequest() (*submitLoanRequest.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &submitLoanRequest.Request{
		RequesterName:      r.RequesterName,
		RequesterContact:   r.RequesterContact,
		SpaceID:            r.SpaceID,
		Date:               date,
		StartTime:          startTime,
		EndTime:            endTime,
		EventType:          r.EventType,
		ExpectedAttendance: r.ExpectedAttendance,
		Resources:          r.Resources,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitLoanRequest.Response) *LoanRequestResponse {
	return &LoanRequestResponse{
		ID:                 resp.ID,
		RequesterName:      resp.RequesterName,
		RequesterContact:   resp.RequesterContact,
		SpaceID:            resp.SpaceID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		EndTime:            resp.EndTime.String(),
		EventType:          resp.EventType,
		ExpectedAttendance: resp.ExpectedAttendance,
		Resources:          resp.Resources,
		Status:             resp.Status,
		SubmittedAt:        resp.SubmittedAt.Format(time.RFC3339),
	}
}
