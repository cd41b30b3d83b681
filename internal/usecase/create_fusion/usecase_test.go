package create_fusion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	academicClient "github.com/m04kA/USM-SpaceService/internal/integrations/academicservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFusionRepo struct {
	created *domain.Fusion
	err     error
}

func (f *fakeFusionRepo) Create(_ context.Context, fusion *domain.Fusion) (*domain.Fusion, error) {
	if f.err != nil {
		return nil, f.err
	}
	fusion.ID = 100
	fusion.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	f.created = fusion
	return fusion, nil
}

type fakeAcademicClient struct {
	groups []*domain.Group
	err    error
}

func (f *fakeAcademicClient) ListGroups(_ context.Context, _ []int64) ([]*domain.Group, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
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

func activeGroup(id int64, code string, headcount int, programID int64, subjects ...int64) *domain.Group {
	return &domain.Group{
		ID:         id,
		Code:       code,
		Active:     true,
		Headcount:  headcount,
		ProgramID:  programID,
		SubjectIDs: subjects,
	}
}

func TestCreateFusion_Success(t *testing.T) {
	repo := &fakeFusionRepo{}
	academic := &fakeAcademicClient{groups: []*domain.Group{
		activeGroup(1, "CS-201", 30, 10, 7, 8),
		activeGroup(2, "CS-202", 40, 11, 8, 7),
	}}
	campus := &fakeCampusClient{space: &domain.Space{ID: 301, Name: "Aud-1", Capacity: 70}}
	uc := NewUseCase(repo, academic, campus, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroupIDs:  []int64{1, 2},
		SubjectID: 7,
		SpaceID:   301,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, []int64{1, 2}, resp.GroupIDs)
	assert.Equal(t, 70, resp.AggregateHeadcount)
	// Программы в порядке первого появления
	assert.Equal(t, []int64{10, 11}, resp.ProgramIDs)
}

func TestCreateFusion_DuplicateGroupIDsCollapsed(t *testing.T) {
	repo := &fakeFusionRepo{}
	academic := &fakeAcademicClient{groups: []*domain.Group{
		activeGroup(1, "CS-201", 30, 10, 7),
		activeGroup(2, "CS-202", 40, 10, 7),
	}}
	campus := &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 100}}
	uc := NewUseCase(repo, academic, campus, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroupIDs:  []int64{1, 2, 1},
		SubjectID: 7,
		SpaceID:   301,
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.GroupIDs)
	assert.Equal(t, 70, resp.AggregateHeadcount)
	assert.Equal(t, []int64{10}, resp.ProgramIDs)
}

func TestCreateFusion_CapacityGate(t *testing.T) {
	academic := &fakeAcademicClient{groups: []*domain.Group{
		activeGroup(1, "CS-201", 30, 10, 7),
		activeGroup(2, "CS-202", 40, 11, 7),
	}}

	t.Run("capacity below headcount fails", func(t *testing.T) {
		campus := &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 60}}
		uc := NewUseCase(&fakeFusionRepo{}, academic, campus, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			GroupIDs:  []int64{1, 2},
			SubjectID: 7,
			SpaceID:   301,
		})

		require.ErrorIs(t, err, ErrInsufficientCapacity)
		assert.Contains(t, err.Error(), "short by 10")
	})

	t.Run("capacity equal to headcount succeeds", func(t *testing.T) {
		campus := &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 70}}
		uc := NewUseCase(&fakeFusionRepo{}, academic, campus, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{
			GroupIDs:  []int64{1, 2},
			SubjectID: 7,
			SpaceID:   301,
		})

		require.NoError(t, err)
		assert.Equal(t, 70, resp.AggregateHeadcount)
	})
}

func TestCreateFusion_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		req       *Request
		academic  *fakeAcademicClient
		campus    *fakeCampusClient
		expectErr error
	}{
		{
			name: "single group is not enough",
			req: &Request{
				GroupIDs:  []int64{1},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic:  &fakeAcademicClient{},
			campus:    &fakeCampusClient{},
			expectErr: ErrInsufficientGroups,
		},
		{
			name: "duplicates of one group are not enough",
			req: &Request{
				GroupIDs:  []int64{1, 1, 1},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic:  &fakeAcademicClient{},
			campus:    &fakeCampusClient{},
			expectErr: ErrInsufficientGroups,
		},
		{
			name: "group not found",
			req: &Request{
				GroupIDs:  []int64{1, 2},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic:  &fakeAcademicClient{err: academicClient.ErrGroupNotFound},
			campus:    &fakeCampusClient{},
			expectErr: ErrGroupNotFound,
		},
		{
			// Реестр вернул 200 с неполным списком: объединение с молча
			// выпавшей группой недопустимо
			name: "partially resolved group set",
			req: &Request{
				GroupIDs:  []int64{1, 2, 3},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic: &fakeAcademicClient{groups: []*domain.Group{
				activeGroup(1, "CS-201", 30, 10, 7),
				activeGroup(2, "CS-202", 40, 11, 7),
			}},
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 200}},
			expectErr: ErrGroupNotFound,
		},
		{
			name: "inactive group blocks fusion",
			req: &Request{
				GroupIDs:  []int64{1, 2},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic: &fakeAcademicClient{groups: []*domain.Group{
				activeGroup(1, "CS-201", 30, 10, 7),
				{ID: 2, Code: "CS-202", Active: false, Headcount: 40, ProgramID: 11, SubjectIDs: []int64{7}},
			}},
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 200}},
			expectErr: ErrInactiveGroup,
		},
		{
			name: "no common subject",
			req: &Request{
				GroupIDs:  []int64{1, 2},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic: &fakeAcademicClient{groups: []*domain.Group{
				activeGroup(1, "CS-201", 30, 10, 7),
				activeGroup(2, "CS-202", 40, 11, 8),
			}},
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 200}},
			expectErr: ErrNoCommonSubject,
		},
		{
			name: "proposed subject outside intersection",
			req: &Request{
				GroupIDs:  []int64{1, 2},
				SubjectID: 9,
				SpaceID:   301,
			},
			academic: &fakeAcademicClient{groups: []*domain.Group{
				activeGroup(1, "CS-201", 30, 10, 7, 9),
				activeGroup(2, "CS-202", 40, 11, 7),
			}},
			campus:    &fakeCampusClient{space: &domain.Space{ID: 301, Capacity: 200}},
			expectErr: ErrNoCommonSubject,
		},
		{
			name: "negative group id",
			req: &Request{
				GroupIDs:  []int64{1, -2},
				SubjectID: 7,
				SpaceID:   301,
			},
			academic:  &fakeAcademicClient{},
			campus:    &fakeCampusClient{},
			expectErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUseCase(&fakeFusionRepo{}, tc.academic, tc.campus, nopLogger{})

			_, err := uc.Execute(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}
