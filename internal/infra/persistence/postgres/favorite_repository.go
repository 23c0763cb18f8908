package postgres

import (
	"context"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite inserts the pair unless the unique index already holds it, then
// reads back whichever row won.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, userID, locationID int64) (*entity.Favorite, error) {
	db := repo.db.WithContext(ctx)
	favoriteM := &model.FavoriteModel{UserID: userID, LocationID: locationID}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "location_id"}},
		DoNothing: true,
	}).Create(favoriteM)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create favorite")
	}
	if result.RowsAffected == 1 {
		return toFavoriteDomain(favoriteM), nil
	}

	var existing model.FavoriteModel
	if err := db.Where("user_id = ? AND location_id = ?", userID, locationID).First(&existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read existing favorite")
	}

	return toFavoriteDomain(&existing), nil
}

// DeleteFavorite removes the pair if present.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, locationID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}

	return nil
}

// FindFavoritesByUser retrieves the favorites of a user.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		LocationID: data.LocationID,
	}
}
