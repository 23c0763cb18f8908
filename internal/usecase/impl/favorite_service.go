package impl

import (
	"context"
	"log/slog"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"
)

// GetFavoritesByUser retrieves the favorite records of a user.
func (srv *crowdMapService) GetFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetFavoritesByUser", slog.Int64("user_id", userID))
	}

	return favorites, nil
}

// GetFavoriteLocations resolves a user's favorites to locations. Favorites pointing at
// a missing location are skipped.
func (srv *crowdMapService) GetFavoriteLocations(ctx context.Context, userID int64) ([]*entity.Location, error) {
	favorites, err := srv.GetFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, 0, len(favorites))
	for _, favorite := range favorites {
		location, err := srv.locationRepo.FindLocationByID(ctx, favorite.LocationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				srv.log(ctx).DebugContext(ctx, "Skipping favorite of missing location",
					slog.Int64("favorite_id", favorite.ID),
					slog.Int64("location_id", favorite.LocationID),
				)

				continue
			}

			return nil, srv.internalError(ctx, err, "GetFavoriteLocations",
				slog.Int64("user_id", userID),
				slog.Int64("location_id", favorite.LocationID),
			)
		}
		locations = append(locations, location)
	}

	return locations, nil
}

// GetFavoriteLocationsWithCrowd is GetFavoriteLocations with each location's current crowd level.
func (srv *crowdMapService) GetFavoriteLocationsWithCrowd(ctx context.Context, userID int64) ([]*usecase.LocationWithCrowd, error) {
	locations, err := srv.GetFavoriteLocations(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.withCrowd(ctx, locations)
}

// CreateFavorite returns the existing favorite for the pair, or creates it.
func (srv *crowdMapService) CreateFavorite(ctx context.Context, input *usecase.FavoriteInput) (*entity.Favorite, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	favorite, err := srv.favoriteRepo.CreateFavorite(ctx, input.UserID, input.LocationID)
	if err != nil {
		return nil, srv.internalError(ctx, err, "CreateFavorite",
			slog.Int64("user_id", input.UserID),
			slog.Int64("location_id", input.LocationID),
		)
	}

	return favorite, nil
}

// DeleteFavorite removes the favorite for the pair if there is one.
func (srv *crowdMapService) DeleteFavorite(ctx context.Context, input *usecase.FavoriteInput) error {
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	if err := srv.favoriteRepo.DeleteFavorite(ctx, input.UserID, input.LocationID); err != nil {
		return srv.internalError(ctx, err, "DeleteFavorite",
			slog.Int64("user_id", input.UserID),
			slog.Int64("location_id", input.LocationID),
		)
	}

	return nil
}
