package memory

import (
	"context"

	"crowdmap/internal/domain/crowd"
	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
)

type crowdLevelRepository struct {
	scope
}

// NewCrowdLevelRepository is the constructor for the in-memory crowd level repository.
func NewCrowdLevelRepository(store *Store) repository.CrowdLevelRepository {
	return &crowdLevelRepository{scope: scope{store: store}}
}

func (repo *crowdLevelRepository) CreateCrowdLevel(_ context.Context, crowdLevel *entity.CrowdLevel) error {
	defer repo.lock()()

	s := repo.store
	s.seq.crowdLevel++
	crowdLevel.ID = s.seq.crowdLevel
	s.crowdLevels[crowdLevel.ID] = cloneCrowdLevel(crowdLevel)
	s.samplesByLocation[crowdLevel.LocationID] = append(s.samplesByLocation[crowdLevel.LocationID], crowdLevel.ID)

	id, locationID := crowdLevel.ID, crowdLevel.LocationID
	repo.tx.record(func() {
		delete(s.crowdLevels, id)
		ids := s.samplesByLocation[locationID]
		s.samplesByLocation[locationID] = ids[:len(ids)-1]
	})

	return nil
}

func (repo *crowdLevelRepository) FindRecentByLocation(_ context.Context, locationID int64, limit int) ([]*entity.CrowdLevel, error) {
	defer repo.rlock()()

	ids := repo.store.samplesByLocation[locationID]
	samples := make([]*entity.CrowdLevel, 0, len(ids))
	for _, id := range ids {
		samples = append(samples, repo.store.crowdLevels[id])
	}

	recent := crowd.History(samples, limit)
	for i, sample := range recent {
		recent[i] = cloneCrowdLevel(sample)
	}

	return recent, nil
}

func (repo *crowdLevelRepository) CountByLocation(_ context.Context, locationID int64) (int64, error) {
	defer repo.rlock()()

	return int64(len(repo.store.samplesByLocation[locationID])), nil
}
