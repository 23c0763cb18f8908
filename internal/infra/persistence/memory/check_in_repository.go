package memory

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
)

type checkInRepository struct {
	scope
}

// NewCheckInRepository is the constructor for the in-memory check-in repository.
func NewCheckInRepository(store *Store) repository.CheckInRepository {
	return &checkInRepository{scope: scope{store: store}}
}

func (repo *checkInRepository) CreateCheckIn(_ context.Context, checkIn *entity.CheckIn) error {
	defer repo.lock()()

	s := repo.store
	s.seq.checkIn++
	checkIn.ID = s.seq.checkIn
	stored := *checkIn
	s.checkIns[stored.ID] = &stored

	id := stored.ID
	repo.tx.record(func() { delete(s.checkIns, id) })

	return nil
}

func (repo *checkInRepository) FindCheckInsByLocation(_ context.Context, locationID int64) ([]*entity.CheckIn, error) {
	return repo.filter(func(c *entity.CheckIn) bool { return c.LocationID == locationID }), nil
}

func (repo *checkInRepository) FindCheckInsByUser(_ context.Context, userID int64) ([]*entity.CheckIn, error) {
	return repo.filter(func(c *entity.CheckIn) bool { return c.UserID == userID }), nil
}

func (repo *checkInRepository) filter(keep func(*entity.CheckIn) bool) []*entity.CheckIn {
	defer repo.rlock()()

	checkIns := make([]*entity.CheckIn, 0)
	for _, checkIn := range repo.store.checkIns {
		if keep(checkIn) {
			c := *checkIn
			checkIns = append(checkIns, &c)
		}
	}

	return sortByID(checkIns, func(c *entity.CheckIn) int64 { return c.ID })
}
