package usecase

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// FavoriteInput identifies a user/location favorite pair.
type FavoriteInput struct {
	UserID     int64 `json:"userId" validate:"required,gt=0"`
	LocationID int64 `json:"locationId" validate:"required,gt=0"`
}

// FavoriteUsecase defines the idempotent favorite relation.
type FavoriteUsecase interface {
	GetFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// GetFavoriteLocations resolves the user's favorites to locations, skipping dangling ones.
	GetFavoriteLocations(ctx context.Context, userID int64) ([]*entity.Location, error)
	GetFavoriteLocationsWithCrowd(ctx context.Context, userID int64) ([]*LocationWithCrowd, error)

	// CreateFavorite returns the existing favorite for the pair if there is one.
	CreateFavorite(ctx context.Context, input *FavoriteInput) (*entity.Favorite, error)

	// DeleteFavorite succeeds whether or not the pair exists.
	DeleteFavorite(ctx context.Context, input *FavoriteInput) error
}
