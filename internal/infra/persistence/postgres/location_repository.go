package postgres

import (
	"context"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/geo"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// resolveLocationLockKey serialises location resolution across connections.
const resolveLocationLockKey int64 = 0x6c6f636174696f6e

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location unconditionally.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	return repo.create(repo.db.WithContext(ctx), location)
}

func (repo *locationRepository) create(db *gorm.DB, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := db.Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID

	return nil
}

// ResolveLocation runs the match-then-insert sequence under a transaction-scoped
// advisory lock so concurrent resolutions cannot both insert. Inside an outer
// transaction GORM nests this as a savepoint and the lock is held until the outer commit.
func (repo *locationRepository) ResolveLocation(ctx context.Context, candidate *entity.Location, matcher geo.Matcher) (*entity.Location, bool, error) {
	var (
		resolved *entity.Location
		created  bool
	)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", resolveLocationLockKey).Error; err != nil {
			return errors.Wrap(err, "failed to acquire location resolve lock")
		}

		bound := matcher.Bound()
		query := tx.Where(
			"latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon(),
		)
		if matcher.PlaceID != "" {
			query = query.Or("place_id = ?", matcher.PlaceID)
		}

		var candidatesM []*model.LocationModel
		if err := query.Order("id ASC").Find(&candidatesM).Error; err != nil {
			return errors.Wrap(err, "failed to find matching locations")
		}

		if existing := matcher.First(toLocationDomains(candidatesM)); existing != nil {
			resolved = existing

			return nil
		}

		if err := repo.create(tx, candidate); err != nil {
			return err
		}
		resolved, created = candidate, true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return resolved, created, nil
}

// FindLocationByID retrieves a location by its id.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocations retrieves every location.
func (repo *locationRepository) FindLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	return toLocationDomains(locationModels), nil
}

// FindLocationsByCategory retrieves the locations of one category.
func (repo *locationRepository) FindLocationsByCategory(ctx context.Context, category string) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by category")
	}

	return toLocationDomains(locationModels), nil
}

// FindLocationsWithin retrieves the locations inside a bounding box.
func (repo *locationRepository) FindLocationsWithin(ctx context.Context, bound orb.Bound) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon()).
		Order("id ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations within bound")
	}

	return toLocationDomains(locationModels), nil
}

// CountLocations returns the number of stored locations.
func (repo *locationRepository) CountLocations(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.LocationModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}

	return count, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Address:     data.Address,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Distance:    data.Distance,
		Icon:        data.Icon,
		PlaceID:     data.PlaceID,
	}
}

func toLocationDomains(data []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(data))
	for _, locationM := range data {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Address:     data.Address,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Distance:    data.Distance,
		Icon:        data.Icon,
		PlaceID:     data.PlaceID,
	}
}
