package submit_loan_request

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeLoanRepo struct {
	created *domain.LoanRequest
	err     error
}

func (f *fakeLoanRepo) Create(_ context.Context, request *domain.LoanRequest) (*domain.LoanRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	request.ID = 55
	request.Status = domain.LoanStatusPending
	request.SubmittedAt = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	f.created = request
	return request, nil
}

type fakeCampusClient struct {
	space *domain.Space
	err   error
}

func (f *fakeCampusClient) GetSpace(_ context.Context, _ int64) (*domain.Space, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.space, nil
}

func newTestUseCase(repo *fakeLoanRepo, campus *fakeCampusClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, campus, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		RequesterName:      "Студсовет",
		RequesterContact:   "studsovet@example.edu",
		SpaceID:            301,
		Date:               time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:          "10:00",
		EndTime:            "12:00",
		EventType:          "лекторий",
		ExpectedAttendance: 40,
		Resources:          []string{"проектор", "микрофон"},
	}
}

func TestSubmitLoanRequest_Success(t *testing.T) {
	repo := &fakeLoanRepo{}
	campus := &fakeCampusClient{space: &domain.Space{ID: 301, Name: "Aud-1"}}
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, campus, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.ID)
	assert.Equal(t, string(domain.LoanStatusPending), resp.Status)
	assert.Equal(t, []string{"проектор", "микрофон"}, resp.Resources)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(301), repo.created.SpaceID)
}

func TestSubmitLoanRequest_SundayDateAllowed(t *testing.T) {
	repo := &fakeLoanRepo{}
	campus := &fakeCampusClient{space: &domain.Space{ID: 301}}
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, campus, now)

	req := validRequest()
	// 2025-10-19 - воскресенье: разовые аренды допустимы вне учебной недели
	req.Date = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestSubmitLoanRequest_SameDayAllowed(t *testing.T) {
	repo := &fakeLoanRepo{}
	campus := &fakeCampusClient{space: &domain.Space{ID: 301}}
	// Подача в конце дня на этот же день допустима: прошлое считается по дням
	now := time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, campus, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestSubmitLoanRequest_Errors(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		mutate    func(req *Request)
		campus    *fakeCampusClient
		expectErr error
	}{
		{
			name:      "missing requester name",
			mutate:    func(req *Request) { req.RequesterName = "" },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInput,
		},
		{
			name:      "missing contact",
			mutate:    func(req *Request) { req.RequesterContact = "" },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInput,
		},
		{
			name:      "requester name too long",
			mutate:    func(req *Request) { req.RequesterName = strings.Repeat("a", domain.MaxRequesterNameLength+1) },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInput,
		},
		{
			name:      "negative attendance",
			mutate:    func(req *Request) { req.ExpectedAttendance = -1 },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInput,
		},
		{
			name:      "too many resources",
			mutate:    func(req *Request) { req.Resources = make([]string, domain.MaxLoanResources+1) },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInput,
		},
		{
			name:      "inverted window",
			mutate:    func(req *Request) { req.StartTime, req.EndTime = "12:00", "10:00" },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrInvalidInterval,
		},
		{
			name:      "date in past",
			mutate:    func(req *Request) { req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC) },
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301}},
			expectErr: ErrDateInPast,
		},
		{
			name:      "space not found",
			mutate:    func(req *Request) {},
			campus:    &fakeCampusClient{err: campusClient.ErrSpaceNotFound},
			expectErr: ErrSpaceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeLoanRepo{}, tc.campus, now)
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}
