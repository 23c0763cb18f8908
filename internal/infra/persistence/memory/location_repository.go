package memory

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/geo"
	"crowdmap/internal/domain/repository"

	"github.com/paulmach/orb"
)

type locationRepository struct {
	scope
}

// NewLocationRepository is the constructor for the in-memory location repository.
func NewLocationRepository(store *Store) repository.LocationRepository {
	return &locationRepository{scope: scope{store: store}}
}

func (repo *locationRepository) CreateLocation(_ context.Context, location *entity.Location) error {
	defer repo.lock()()

	repo.insert(location)

	return nil
}

// insert must be called with the write lock held.
func (repo *locationRepository) insert(location *entity.Location) {
	s := repo.store
	s.seq.location++
	location.ID = s.seq.location

	stored := cloneLocation(location)
	s.locations[stored.ID] = stored
	s.grid.insert(stored.ID, stored.Point())

	var placeID string
	if stored.HasPlaceID() {
		placeID = *stored.PlaceID
		s.placeIDs[placeID] = append(s.placeIDs[placeID], stored.ID)
	}

	id, point := stored.ID, stored.Point()
	repo.tx.record(func() {
		delete(s.locations, id)
		s.grid.remove(id, point)
		if placeID != "" {
			ids := s.placeIDs[placeID]
			s.placeIDs[placeID] = ids[:len(ids)-1]
			if len(s.placeIDs[placeID]) == 0 {
				delete(s.placeIDs, placeID)
			}
		}
	})
}

func (repo *locationRepository) ResolveLocation(_ context.Context, candidate *entity.Location, matcher geo.Matcher) (*entity.Location, bool, error) {
	defer repo.lock()()

	if existing := matcher.First(repo.candidates(matcher)); existing != nil {
		return cloneLocation(existing), false, nil
	}

	repo.insert(candidate)

	return cloneLocation(candidate), true, nil
}

// candidates narrows the locations a matcher has to inspect using the place id
// and spatial indexes. Must be called with a lock held.
func (repo *locationRepository) candidates(matcher geo.Matcher) []*entity.Location {
	s := repo.store
	var ids []int64
	if matcher.PlaceID != "" {
		ids = append(ids, s.placeIDs[matcher.PlaceID]...)
	}

	cellIDs, ok := s.grid.within(matcher.Bound())
	if !ok {
		return repo.all()
	}
	ids = append(ids, cellIDs...)

	locations := make([]*entity.Location, 0, len(ids))
	for _, id := range ids {
		locations = append(locations, s.locations[id])
	}

	return locations
}

func (repo *locationRepository) all() []*entity.Location {
	locations := make([]*entity.Location, 0, len(repo.store.locations))
	for _, loc := range repo.store.locations {
		locations = append(locations, loc)
	}

	return locations
}

func (repo *locationRepository) FindLocationByID(_ context.Context, id int64) (*entity.Location, error) {
	defer repo.rlock()()

	location, ok := repo.store.locations[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return cloneLocation(location), nil
}

func (repo *locationRepository) FindLocations(_ context.Context) ([]*entity.Location, error) {
	return repo.filter(func(*entity.Location) bool { return true }), nil
}

func (repo *locationRepository) FindLocationsByCategory(_ context.Context, category string) ([]*entity.Location, error) {
	return repo.filter(func(loc *entity.Location) bool { return loc.Category == category }), nil
}

func (repo *locationRepository) FindLocationsWithin(_ context.Context, bound orb.Bound) ([]*entity.Location, error) {
	defer repo.rlock()()

	source, ok := repo.idsWithin(bound)
	if !ok {
		source = repo.all()
	}

	locations := make([]*entity.Location, 0)
	for _, loc := range source {
		if bound.Contains(loc.Point()) {
			locations = append(locations, cloneLocation(loc))
		}
	}

	return sortByID(locations, locationID), nil
}

func (repo *locationRepository) idsWithin(bound orb.Bound) ([]*entity.Location, bool) {
	ids, ok := repo.store.grid.within(bound)
	if !ok {
		return nil, false
	}

	locations := make([]*entity.Location, 0, len(ids))
	for _, id := range ids {
		locations = append(locations, repo.store.locations[id])
	}

	return locations, true
}

func (repo *locationRepository) CountLocations(_ context.Context) (int64, error) {
	defer repo.rlock()()

	return int64(len(repo.store.locations)), nil
}

func (repo *locationRepository) filter(keep func(*entity.Location) bool) []*entity.Location {
	defer repo.rlock()()

	locations := make([]*entity.Location, 0)
	for _, loc := range repo.store.locations {
		if keep(loc) {
			locations = append(locations, cloneLocation(loc))
		}
	}

	return sortByID(locations, locationID)
}

func locationID(l *entity.Location) int64 { return l.ID }
