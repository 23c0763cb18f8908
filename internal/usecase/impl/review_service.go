package impl

import (
	"context"
	"log/slog"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"
)

// GetReviewsByLocation retrieves the reviews of a location, newest first.
func (srv *crowdMapService) GetReviewsByLocation(ctx context.Context, locationID int64) ([]*entity.Review, error) {
	if err := requireID("locationId", locationID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindReviewsByLocation(ctx, locationID)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetReviewsByLocation", slog.Int64("location_id", locationID))
	}

	return reviews, nil
}

// GetReviewsWithAuthors attaches the author summary to each review. Authors are looked up once per user.
func (srv *crowdMapService) GetReviewsWithAuthors(ctx context.Context, locationID int64) ([]*usecase.ReviewWithAuthor, error) {
	reviews, err := srv.GetReviewsByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	authors := make(map[int64]*entity.Author)
	result := make([]*usecase.ReviewWithAuthor, 0, len(reviews))
	for _, review := range reviews {
		author, seen := authors[review.UserID]
		if !seen {
			user, err := srv.userRepo.FindUserByID(ctx, review.UserID)
			switch {
			case err == nil:
				author = user.Author()
			case errors.Is(err, repository.ErrUserNotFound):
				// Unknown authors serialise as null.
			default:
				return nil, srv.internalError(ctx, err, "GetReviewsWithAuthors", slog.Int64("user_id", review.UserID))
			}
			authors[review.UserID] = author
		}
		result = append(result, &usecase.ReviewWithAuthor{Review: review, User: author})
	}

	return result, nil
}

// CreateReview stores a review, stamping it with the current time when none is given.
func (srv *crowdMapService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:     input.UserID,
		LocationID: input.LocationID,
		Content:    input.Content,
		Timestamp:  srv.now(),
	}
	if input.Timestamp != nil {
		review.Timestamp = *input.Timestamp
	}

	if err := srv.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, srv.internalError(ctx, err, "CreateReview",
			slog.Int64("user_id", input.UserID),
			slog.Int64("location_id", input.LocationID),
		)
	}

	return review, nil
}
