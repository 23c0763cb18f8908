package usecase

import (
	"context"
	"time"

	"crowdmap/internal/domain/entity"
)

// CreateReviewInput is the insertable shape of a review. A nil timestamp means now.
type CreateReviewInput struct {
	UserID     int64      `json:"userId" validate:"required,gt=0"`
	LocationID int64      `json:"locationId" validate:"required,gt=0"`
	Content    string     `json:"content" validate:"required"`
	Timestamp  *time.Time `json:"timestamp"`
}

// ReviewWithAuthor is a review plus the public summary of its author (nil for unknown users).
type ReviewWithAuthor struct {
	*entity.Review
	User *entity.Author `json:"user"`
}

// ReviewUsecase defines review creation and lookups.
type ReviewUsecase interface {
	// GetReviewsByLocation returns the reviews of a location, newest first.
	GetReviewsByLocation(ctx context.Context, locationID int64) ([]*entity.Review, error)
	GetReviewsWithAuthors(ctx context.Context, locationID int64) ([]*ReviewWithAuthor, error)
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
}
