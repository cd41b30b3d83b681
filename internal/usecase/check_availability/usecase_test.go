package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	campusClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
	"github.com/m04kA/USM-SpaceService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCampusClient struct {
	space       *domain.Space
	spaceErr    error
	sessions    []*domain.ScheduledSession
	sessionsErr error

	lastFilter domain.SessionsFilter
}

func (f *fakeCampusClient) GetSpace(_ context.Context, _ int64) (*domain.Space, error) {
	if f.spaceErr != nil {
		return nil, f.spaceErr
	}
	return f.space, nil
}

func (f *fakeCampusClient) ListSessions(_ context.Context, filter domain.SessionsFilter) ([]*domain.ScheduledSession, error) {
	f.lastFilter = filter
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func labSession(id int64, weekday domain.Weekday, start, end string) *domain.ScheduledSession {
	return &domain.ScheduledSession{
		ID:          id,
		SpaceID:     301,
		Weekday:     weekday,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		GroupID:     42,
		SubjectID:   7,
		GroupCode:   "CS-204",
		SubjectName: "Распределенные системы",
	}
}

func TestCheckAvailability_FreeWhenNoSessions(t *testing.T) {
	client := &fakeCampusClient{
		space: &domain.Space{ID: 301, Name: "Lab-301"},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   301,
		Weekday:   domain.Monday,
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.Free)
	assert.Nil(t, resp.Occupant)
}

func TestCheckAvailability_BlockedByOverlappingSession(t *testing.T) {
	client := &fakeCampusClient{
		space:    &domain.Space{ID: 301, Name: "Lab-301"},
		sessions: []*domain.ScheduledSession{labSession(11, domain.Monday, "08:00", "12:00")},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   301,
		Weekday:   domain.Monday,
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	assert.False(t, resp.Free)
	require.NotNil(t, resp.Occupant)
	assert.Equal(t, int64(11), resp.Occupant.SessionID)
	assert.Equal(t, "CS-204", resp.Occupant.GroupCode)
}

func TestCheckAvailability_TouchingIntervalIsFree(t *testing.T) {
	client := &fakeCampusClient{
		space:    &domain.Space{ID: 301, Name: "Lab-301"},
		sessions: []*domain.ScheduledSession{labSession(11, domain.Monday, "08:00", "12:00")},
	}
	uc := NewUseCase(client, nopLogger{})

	// Окно начинается ровно в момент окончания занятия
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   301,
		Weekday:   domain.Monday,
		StartTime: "12:00",
		EndTime:   "13:00",
	})

	require.NoError(t, err)
	assert.True(t, resp.Free)
}

func TestCheckAvailability_FirstBlockingSessionInCatalogOrder(t *testing.T) {
	client := &fakeCampusClient{
		space: &domain.Space{ID: 301, Name: "Lab-301"},
		sessions: []*domain.ScheduledSession{
			labSession(11, domain.Monday, "09:00", "10:00"),
			labSession(12, domain.Monday, "10:30", "12:00"),
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   301,
		Weekday:   domain.Monday,
		StartTime: "09:30",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Occupant)
	assert.Equal(t, int64(11), resp.Occupant.SessionID)
}

func TestCheckAvailability_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		client    *fakeCampusClient
		req       *Request
		expectErr error
	}{
		{
			name:   "space not found",
			client: &fakeCampusClient{spaceErr: campusClient.ErrSpaceNotFound},
			req: &Request{
				SpaceID:   999,
				Weekday:   domain.Monday,
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			expectErr: ErrSpaceNotFound,
		},
		{
			name:   "inverted interval",
			client: &fakeCampusClient{space: &domain.Space{ID: 301}},
			req: &Request{
				SpaceID:   301,
				Weekday:   domain.Monday,
				StartTime: "12:00",
				EndTime:   "10:00",
			},
			expectErr: ErrInvalidInterval,
		},
		{
			name:   "unknown weekday",
			client: &fakeCampusClient{space: &domain.Space{ID: 301}},
			req: &Request{
				SpaceID:   301,
				Weekday:   "funday",
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			expectErr: ErrInvalidInput,
		},
		{
			name:   "non-positive space id",
			client: &fakeCampusClient{space: &domain.Space{ID: 301}},
			req: &Request{
				SpaceID:   0,
				Weekday:   domain.Monday,
				StartTime: "09:00",
				EndTime:   "10:00",
			},
			expectErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUseCase(tc.client, nopLogger{})

			_, err := uc.Execute(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestCheckAvailability_SessionsFilteredBySpaceAndWeekday(t *testing.T) {
	client := &fakeCampusClient{space: &domain.Space{ID: 301}}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:   301,
		Weekday:   domain.Friday,
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	require.NoError(t, err)
	require.NotNil(t, client.lastFilter.SpaceID)
	require.NotNil(t, client.lastFilter.Weekday)
	assert.Equal(t, int64(301), *client.lastFilter.SpaceID)
	assert.Equal(t, domain.Friday, *client.lastFilter.Weekday)
}
