package memory

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
)

type favoriteRepository struct {
	scope
}

// NewFavoriteRepository is the constructor for the in-memory favorite repository.
func NewFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &favoriteRepository{scope: scope{store: store}}
}

func (repo *favoriteRepository) CreateFavorite(_ context.Context, userID, locationID int64) (*entity.Favorite, error) {
	defer repo.lock()()

	s := repo.store
	key := favoriteKey{userID: userID, locationID: locationID}
	if id, exists := s.favoritePairs[key]; exists {
		existing := *s.favorites[id]

		return &existing, nil
	}

	s.seq.favorite++
	favorite := &entity.Favorite{
		ID:         s.seq.favorite,
		UserID:     userID,
		LocationID: locationID,
	}
	stored := *favorite
	s.favorites[favorite.ID] = &stored
	s.favoritePairs[key] = favorite.ID

	repo.tx.record(func() {
		delete(s.favorites, stored.ID)
		delete(s.favoritePairs, key)
	})

	return favorite, nil
}

func (repo *favoriteRepository) DeleteFavorite(_ context.Context, userID, locationID int64) error {
	defer repo.lock()()

	s := repo.store
	key := favoriteKey{userID: userID, locationID: locationID}
	id, exists := s.favoritePairs[key]
	if !exists {
		return nil
	}

	removed := s.favorites[id]
	delete(s.favorites, id)
	delete(s.favoritePairs, key)

	repo.tx.record(func() {
		s.favorites[id] = removed
		s.favoritePairs[key] = id
	})

	return nil
}

func (repo *favoriteRepository) FindFavoritesByUser(_ context.Context, userID int64) ([]*entity.Favorite, error) {
	defer repo.rlock()()

	favorites := make([]*entity.Favorite, 0)
	for _, favorite := range repo.store.favorites {
		if favorite.UserID == userID {
			f := *favorite
			favorites = append(favorites, &f)
		}
	}

	return sortByID(favorites, func(f *entity.Favorite) int64 { return f.ID }), nil
}
