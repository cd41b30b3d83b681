package aggregate_occupancy

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
	spaces      map[int64]*domain.Space
	allSpaces   []*domain.Space
	sessions    map[int64][]*domain.ScheduledSession
	spaceErr    error
	sessionsErr error
}

func (f *fakeCampusClient) GetSpace(_ context.Context, spaceID int64) (*domain.Space, error) {
	if f.spaceErr != nil {
		return nil, f.spaceErr
	}
	space, ok := f.spaces[spaceID]
	if !ok {
		return nil, campusClient.ErrSpaceNotFound
	}
	return space, nil
}

func (f *fakeCampusClient) ListSpaces(_ context.Context) ([]*domain.Space, error) {
	return f.allSpaces, nil
}

func (f *fakeCampusClient) ListSessions(_ context.Context, filter domain.SessionsFilter) ([]*domain.ScheduledSession, error) {
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	if filter.SpaceID == nil {
		return nil, nil
	}
	return f.sessions[*filter.SpaceID], nil
}

func session(spaceID int64, weekday domain.Weekday, start, end string) *domain.ScheduledSession {
	return &domain.ScheduledSession{
		SpaceID:   spaceID,
		Weekday:   weekday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestAggregateOccupancy_ClassificationBoundaries(t *testing.T) {
	// Окно 10 часов: проценты задаются длительностью занятий напрямую
	testCases := []struct {
		name     string
		sessions []*domain.ScheduledSession
		expected domain.OccupancyClass
	}{
		{
			name: "over occupied above 85 percent",
			sessions: []*domain.ScheduledSession{
				session(1, domain.Monday, "08:00", "16:36"), // 8.6h -> 86%
			},
			expected: domain.OccupancyOverOccupied,
		},
		{
			name: "high but not over occupied is normal",
			sessions: []*domain.ScheduledSession{
				session(1, domain.Monday, "08:00", "16:24"), // 8.4h -> 84%
			},
			expected: domain.OccupancyNormal,
		},
		{
			name: "exactly 50 percent is normal",
			sessions: []*domain.ScheduledSession{
				session(1, domain.Monday, "08:00", "13:00"), // 5h -> 50%
			},
			expected: domain.OccupancyNormal,
		},
		{
			name: "below 50 percent is under utilized",
			sessions: []*domain.ScheduledSession{
				session(1, domain.Monday, "08:00", "12:54"), // 4.9h -> 49%
			},
			expected: domain.OccupancyUnderUtilized,
		},
		{
			name:     "no sessions is under utilized",
			sessions: nil,
			expected: domain.OccupancyUnderUtilized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeCampusClient{
				spaces:   map[int64]*domain.Space{1: {ID: 1, Name: "Aud-1"}},
				sessions: map[int64][]*domain.ScheduledSession{1: tc.sessions},
			}
			uc := NewUseCase(client, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				SpaceIDs:    []int64{1},
				WindowHours: 10,
			})

			require.NoError(t, err)
			require.Len(t, resp.Records, 1)
			assert.Equal(t, tc.expected, resp.Records[0].Classification)
		})
	}
}

func TestAggregateOccupancy_DayPartBreakdown(t *testing.T) {
	client := &fakeCampusClient{
		spaces: map[int64]*domain.Space{1: {ID: 1, Name: "Lab-301"}},
		sessions: map[int64][]*domain.ScheduledSession{1: {
			session(1, domain.Monday, "09:00", "11:00"),    // утро, 2h
			session(1, domain.Monday, "12:00", "13:30"),    // день, 1.5h
			session(1, domain.Wednesday, "18:00", "20:00"), // вечер, 2h
		}},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceIDs:    []int64{1},
		WindowHours: 48,
	})

	require.NoError(t, err)
	require.Len(t, resp.Records, 1)

	record := resp.Records[0]
	assert.InDelta(t, 5.5, record.HoursOccupied, 0.001)
	assert.InDelta(t, 2.0, record.DayParts[domain.DayPartMorning], 0.001)
	assert.InDelta(t, 1.5, record.DayParts[domain.DayPartAfternoon], 0.001)
	assert.InDelta(t, 2.0, record.DayParts[domain.DayPartEvening], 0.001)
}

func TestAggregateOccupancy_AllSpacesWhenNoneRequested(t *testing.T) {
	client := &fakeCampusClient{
		allSpaces: []*domain.Space{
			{ID: 1, Name: "Aud-1"},
			{ID: 2, Name: "Lab-301"},
		},
		sessions: map[int64][]*domain.ScheduledSession{},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{WindowHours: 48})

	require.NoError(t, err)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Aud-1", resp.Records[0].SpaceName)
	assert.Equal(t, "Lab-301", resp.Records[1].SpaceName)
}

func TestAggregateOccupancy_Errors(t *testing.T) {
	t.Run("unknown space id", func(t *testing.T) {
		client := &fakeCampusClient{spaces: map[int64]*domain.Space{}}
		uc := NewUseCase(client, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			SpaceIDs:    []int64{99},
			WindowHours: 48,
		})

		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("non-positive window", func(t *testing.T) {
		uc := NewUseCase(&fakeCampusClient{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{WindowHours: 0})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
