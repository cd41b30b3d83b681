package models

import (
	"errors"
	"time"

	"github.com/m04kA/USM-SpaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе заявки
	ErrInvalidStatus = errors.New("invalid loan request status")
)

// Request модели

// ListLoanRequestsRequest запрос на получение списка заявок
type ListLoanRequestsRequest struct {
	SpaceID   *int64     `json:"spaceId,omitempty"`   // Фильтр по помещению (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListLoanRequestsRequest) ToDomainFilter() (domain.LoanRequestsFilter, error) {
	filter := domain.LoanRequestsFilter{
		SpaceID:   r.SpaceID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainLoanStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RejectLoanRequest запрос на отклонение заявки
type RejectLoanRequest struct {
	Comment string `json:"comment"`
}

// Response модели

// LoanRequestResponse ответ с данными заявки
type LoanRequestResponse struct {
	ID                 int64    `json:"id"`
	RequesterName      string   `json:"requesterName"`
	RequesterContact   string   `json:"requesterContact"`
	SpaceID            int64    `json:"spaceId"`
	Date               string   `json:"date"`      // "2025-10-15"
	StartTime          string   `json:"startTime"` // "10:00"
	EndTime            string   `json:"endTime"`   // "12:00"
	EventType          string   `json:"eventType"`
	ExpectedAttendance int      `json:"expectedAttendance"`
	Resources          []string `json:"resources"`
	Status             string   `json:"status"`
	AdminComment       *string  `json:"adminComment,omitempty"`

	SubmittedAt time.Time  `json:"submittedAt"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
}

// LoanRequestListResponse ответ со списком заявок
type LoanRequestListResponse struct {
	Requests []LoanRequestResponse `json:"requests"`
}

// Методы конвертации

// FromDomainLoanRequest конвертирует domain модель в DTO
func FromDomainLoanRequest(r *domain.LoanRequest) *LoanRequestResponse {
	if r == nil {
		return nil
	}

	return &LoanRequestResponse{
		ID:                 r.ID,
		RequesterName:      r.RequesterName,
		RequesterContact:   r.RequesterContact,
		SpaceID:            r.SpaceID,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		EventType:          r.EventType,
		ExpectedAttendance: r.ExpectedAttendance,
		Resources:          r.Resources,
		Status:             string(r.Status),
		AdminComment:       r.AdminComment,
		SubmittedAt:        r.SubmittedAt,
		DecidedAt:          r.DecidedAt,
	}
}

// FromDomainLoanRequestList конвертирует список domain моделей в DTO
func FromDomainLoanRequestList(requests []*domain.LoanRequest) *LoanRequestListResponse {
	responses := make([]LoanRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, *FromDomainLoanRequest(request))
	}
	return &LoanRequestListResponse{Requests: responses}
}

// ToDomainLoanStatus конвертирует строку в domain статус
func ToDomainLoanStatus(s string) (domain.LoanStatus, error) {
	switch domain.LoanStatus(s) {
	case domain.LoanStatusPending, domain.LoanStatusApproved, domain.LoanStatusRejected:
		return domain.LoanStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
