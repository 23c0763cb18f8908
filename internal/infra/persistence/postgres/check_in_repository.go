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

// checkInRepository implements the domain.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

// CreateCheckIn appends a check-in.
func (repo *checkInRepository) CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)

	if err := repo.db.WithContext(ctx).Create(checkInM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("crowd perception out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in")
	}

	checkIn.ID = checkInM.ID

	return nil
}

// FindCheckInsByLocation retrieves the check-ins of a location.
func (repo *checkInRepository) FindCheckInsByLocation(ctx context.Context, locationID int64) ([]*entity.CheckIn, error) {
	return repo.find(ctx, "location_id = ?", locationID)
}

// FindCheckInsByUser retrieves the check-ins of a user.
func (repo *checkInRepository) FindCheckInsByUser(ctx context.Context, userID int64) ([]*entity.CheckIn, error) {
	return repo.find(ctx, "user_id = ?", userID)
}

func (repo *checkInRepository) find(ctx context.Context, condition string, id int64) ([]*entity.CheckIn, error) {
	var checkInModels []*model.CheckInModel
	if err := repo.db.WithContext(ctx).
		Where(condition, id).
		Order("id ASC").
		Find(&checkInModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find check-ins")
	}

	checkIns := make([]*entity.CheckIn, 0, len(checkInModels))
	for _, checkInM := range checkInModels {
		checkIns = append(checkIns, toCheckInDomain(checkInM))
	}

	return checkIns, nil
}

// --- Mapper Functions ---

func toCheckInDomain(data *model.CheckInModel) *entity.CheckIn {
	return &entity.CheckIn{
		ID:              data.ID,
		UserID:          data.UserID,
		LocationID:      data.LocationID,
		Timestamp:       data.Timestamp,
		CrowdPerception: entity.Level(data.CrowdPerception),
	}
}

func fromCheckInDomain(data *entity.CheckIn) *model.CheckInModel {
	return &model.CheckInModel{
		ID:              data.ID,
		UserID:          data.UserID,
		LocationID:      data.LocationID,
		Timestamp:       data.Timestamp,
		CrowdPerception: int(data.CrowdPerception),
	}
}
