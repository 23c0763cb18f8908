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

// reviewRepository implements the domain.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview appends a review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:     review.UserID,
		LocationID: review.LocationID,
		Content:    review.Content,
		Timestamp:  review.Timestamp,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// FindReviewsByLocation retrieves the reviews of a location, newest first.
func (repo *reviewRepository) FindReviewsByLocation(ctx context.Context, locationID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by location")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, &entity.Review{
			ID:         reviewM.ID,
			UserID:     reviewM.UserID,
			LocationID: reviewM.LocationID,
			Content:    reviewM.Content,
			Timestamp:  reviewM.Timestamp,
		})
	}

	return reviews, nil
}
