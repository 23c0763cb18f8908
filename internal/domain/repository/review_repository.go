package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// ReviewRepository stores location reviews. Reviews are append-only.
type ReviewRepository interface {
	// CreateReview assigns the next review id and persists the review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewsByLocation retrieves the reviews of a location, newest first.
	FindReviewsByLocation(ctx context.Context, locationID int64) ([]*entity.Review, error)
}
