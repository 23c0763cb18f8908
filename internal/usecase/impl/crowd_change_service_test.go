package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addSample(t *testing.T, repo repository.CrowdLevelRepository, locationID int64, level entity.Level, at time.Time) *entity.CrowdLevel {
	t.Helper()

	sample := &entity.CrowdLevel{LocationID: locationID, Level: level, Percentage: 50, Timestamp: at}
	require.NoError(t, repo.CreateCrowdLevel(context.Background(), sample))

	return sample
}

func TestCrowdChangeService_DetectCrowdChange(t *testing.T) {
	tests := []struct {
		name     string
		history  []entity.Level
		wantFrom *entity.Level
		wantTo   entity.Level
		wantNone bool
	}{
		{name: "first sample", history: []entity.Level{entity.LevelHigh}, wantTo: entity.LevelHigh},
		{name: "level rises", history: []entity.Level{entity.LevelLow, entity.LevelHigh}, wantFrom: ptr(entity.LevelLow), wantTo: entity.LevelHigh},
		{name: "level falls", history: []entity.Level{entity.LevelHigh, entity.LevelMedium}, wantFrom: ptr(entity.LevelHigh), wantTo: entity.LevelMedium},
		{name: "unchanged", history: []entity.Level{entity.LevelMedium, entity.LevelMedium}, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewCrowdLevelRepository(memory.NewStore())
			srv := NewCrowdChangeService(CrowdChangeServiceParams{CrowdLevelRepo: repo, Logger: newDiscardLogger()})

			var last *entity.CrowdLevel
			for i, level := range tt.history {
				last = addSample(t, repo, 4, level, testClock.Add(time.Duration(i)*time.Minute))
			}

			change, err := srv.DetectCrowdChange(context.Background(), &service.CheckInEvent{
				CheckInID:    9,
				CrowdLevelID: last.ID,
				LocationID:   4,
			})
			require.NoError(t, err)
			if tt.wantNone {
				assert.Nil(t, change)

				return
			}

			require.NotNil(t, change)
			assert.Equal(t, tt.wantFrom, change.From)
			assert.Equal(t, tt.wantTo, change.To)
			assert.Equal(t, int64(9), change.CheckInID)
			assert.Equal(t, last.Timestamp, change.ObservedAt)
		})
	}
}

func TestCrowdChangeService_Superseded(t *testing.T) {
	repo := memory.NewCrowdLevelRepository(memory.NewStore())
	srv := NewCrowdChangeService(CrowdChangeServiceParams{CrowdLevelRepo: repo, Logger: newDiscardLogger()})

	stale := addSample(t, repo, 4, entity.LevelLow, testClock)
	addSample(t, repo, 4, entity.LevelHigh, testClock.Add(time.Minute))

	change, err := srv.DetectCrowdChange(context.Background(), &service.CheckInEvent{CrowdLevelID: stale.ID, LocationID: 4})
	require.NoError(t, err)
	assert.Nil(t, change)

	change, err = srv.DetectCrowdChange(context.Background(), &service.CheckInEvent{CrowdLevelID: 1, LocationID: 5})
	require.NoError(t, err)
	assert.Nil(t, change)
}

type failingCrowdLevelRepo struct {
	repository.CrowdLevelRepository
}

func (failingCrowdLevelRepo) FindRecentByLocation(context.Context, int64, int) ([]*entity.CrowdLevel, error) {
	return nil, errors.New("connection reset")
}

func TestCrowdChangeService_RepositoryError(t *testing.T) {
	srv := NewCrowdChangeService(CrowdChangeServiceParams{CrowdLevelRepo: failingCrowdLevelRepo{}, Logger: newDiscardLogger()})

	change, err := srv.DetectCrowdChange(context.Background(), &service.CheckInEvent{CrowdLevelID: 1, LocationID: 4})
	assert.Nil(t, change)
	assert.ErrorContains(t, err, "connection reset")
}
