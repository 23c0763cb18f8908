package memory

import (
	"context"
	"slices"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
)

type reviewRepository struct {
	scope
}

// NewReviewRepository is the constructor for the in-memory review repository.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{scope: scope{store: store}}
}

func (repo *reviewRepository) CreateReview(_ context.Context, review *entity.Review) error {
	defer repo.lock()()

	s := repo.store
	s.seq.review++
	review.ID = s.seq.review
	stored := *review
	s.reviews[stored.ID] = &stored

	id := stored.ID
	repo.tx.record(func() { delete(s.reviews, id) })

	return nil
}

func (repo *reviewRepository) FindReviewsByLocation(_ context.Context, locationID int64) ([]*entity.Review, error) {
	defer repo.rlock()()

	reviews := make([]*entity.Review, 0)
	for _, review := range repo.store.reviews {
		if review.LocationID == locationID {
			r := *review
			reviews = append(reviews, &r)
		}
	}
	slices.SortFunc(reviews, entity.NewestReviewFirst)

	return reviews, nil
}
