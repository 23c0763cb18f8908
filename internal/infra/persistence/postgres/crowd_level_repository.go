package postgres

import (
	"context"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// crowdLevelRepository implements the domain.CrowdLevelRepository interface.
type crowdLevelRepository struct {
	db *gorm.DB
}

// NewCrowdLevelRepository is the constructor for crowdLevelRepository.
func NewCrowdLevelRepository(db *gorm.DB) repository.CrowdLevelRepository {
	return &crowdLevelRepository{db: db}
}

// CreateCrowdLevel appends a sample.
func (repo *crowdLevelRepository) CreateCrowdLevel(ctx context.Context, crowdLevel *entity.CrowdLevel) error {
	crowdLevelM := fromCrowdLevelDomain(crowdLevel)

	if err := repo.db.WithContext(ctx).Create(crowdLevelM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("crowd level out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crowd level")
	}

	crowdLevel.ID = crowdLevelM.ID

	return nil
}

// FindRecentByLocation retrieves the newest samples of a location.
func (repo *crowdLevelRepository) FindRecentByLocation(ctx context.Context, locationID int64, limit int) ([]*entity.CrowdLevel, error) {
	if limit <= 0 {
		return []*entity.CrowdLevel{}, nil
	}

	var crowdLevelModels []*model.CrowdLevelModel
	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&crowdLevelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent crowd levels")
	}

	crowdLevels := make([]*entity.CrowdLevel, 0, len(crowdLevelModels))
	for _, crowdLevelM := range crowdLevelModels {
		crowdLevels = append(crowdLevels, toCrowdLevelDomain(crowdLevelM))
	}

	return crowdLevels, nil
}

// CountByLocation returns the number of samples of a location.
func (repo *crowdLevelRepository) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CrowdLevelModel{}).
		Where("location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count crowd levels")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCrowdLevelDomain(data *model.CrowdLevelModel) *entity.CrowdLevel {
	if data == nil {
		return nil
	}

	return &entity.CrowdLevel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Level:      entity.Level(data.Level),
		Percentage: entity.Percentage(data.Percentage),
		Timestamp:  data.Timestamp,
		WaitTime:   data.WaitTime,
	}
}

func fromCrowdLevelDomain(data *entity.CrowdLevel) *model.CrowdLevelModel {
	if data == nil {
		return nil
	}

	return &model.CrowdLevelModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		Level:      int(data.Level),
		Percentage: int(data.Percentage),
		Timestamp:  data.Timestamp,
		WaitTime:   data.WaitTime,
	}
}
