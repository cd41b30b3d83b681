package fusions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	fusionRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/fusion"
	"github.com/m04kA/USM-SpaceService/internal/service/fusions/models"
	"github.com/m04kA/USM-SpaceService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFusionRepo struct {
	fusion    *domain.Fusion
	list      []*domain.Fusion
	getErr    error
	listErr   error
	deleteErr error

	lastSpaceID *int64
	deletedID   int64
}

func (f *fakeFusionRepo) GetByID(_ context.Context, _ int64) (*domain.Fusion, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.fusion, nil
}

func (f *fakeFusionRepo) List(_ context.Context, spaceID *int64) ([]*domain.Fusion, error) {
	f.lastSpaceID = spaceID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeFusionRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func sampleFusion() *domain.Fusion {
	return &domain.Fusion{
		ID:                 100,
		SpaceID:            301,
		SubjectID:          7,
		GroupIDs:           []int64{1, 2},
		AggregateHeadcount: 70,
		ProgramIDs:         []int64{10, 11},
		CreatedAt:          time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFusionsGetByID(t *testing.T) {
	svc := NewService(&fakeFusionRepo{fusion: sampleFusion()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, []int64{1, 2}, resp.GroupIDs)
}

func TestFusionsGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeFusionRepo{getErr: fusionRepo.ErrFusionNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrFusionNotFound)
}

func TestFusionsList_SpaceFilterPassedThrough(t *testing.T) {
	repo := &fakeFusionRepo{list: []*domain.Fusion{sampleFusion()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListFusionsRequest{
		SpaceID: ptr.Ptr(int64(301)),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Fusions, 1)
	require.NotNil(t, repo.lastSpaceID)
	assert.Equal(t, int64(301), *repo.lastSpaceID)
}

func TestFusionsDelete(t *testing.T) {
	repo := &fakeFusionRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), repo.deletedID)
}

func TestFusionsDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeFusionRepo{deleteErr: fusionRepo.ErrFusionNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrFusionNotFound)
}
