package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// FavoriteRepository stores user/location favorites with at most one record per pair.
type FavoriteRepository interface {
	// CreateFavorite returns the existing favorite for the pair, or stores a new one.
	// The existence check and the insert are atomic.
	CreateFavorite(ctx context.Context, userID, locationID int64) (*entity.Favorite, error)

	// DeleteFavorite removes the favorite for the pair. A missing favorite is not an error.
	DeleteFavorite(ctx context.Context, userID, locationID int64) error

	// FindFavoritesByUser retrieves all favorites of a user.
	FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)
}
