package usecase

import (
	"context"
	"time"

	"crowdmap/internal/domain/entity"
)

// CreateCrowdLevelInput is the insertable shape of a crowd level sample.
type CreateCrowdLevelInput struct {
	LocationID int64      `json:"locationId" validate:"required,gt=0"`
	Level      int        `json:"level" validate:"required,oneof=1 2 3"`
	Percentage *int       `json:"percentage" validate:"required,min=0,max=100"`
	Timestamp  *time.Time `json:"timestamp" validate:"required"`
	WaitTime   *int       `json:"waitTime" validate:"omitempty,min=0"`
}

// CrowdUsecase defines the read views over crowd level samples.
type CrowdUsecase interface {
	// GetCurrentCrowdLevel returns the most recent sample, or nil when the location has none.
	GetCurrentCrowdLevel(ctx context.Context, locationID int64) (*entity.CrowdLevel, error)

	// GetCrowdLevelHistory returns up to limit samples, most recent first.
	// A nil limit uses the configured default.
	GetCrowdLevelHistory(ctx context.Context, locationID int64, limit *int) ([]*entity.CrowdLevel, error)

	CreateCrowdLevel(ctx context.Context, input *CreateCrowdLevelInput) (*entity.CrowdLevel, error)
}
