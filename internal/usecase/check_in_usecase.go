package usecase

import (
	"context"
	"time"

	"crowdmap/internal/domain/entity"
)

// CreateCheckInInput is the insertable shape of a check-in. A nil timestamp means now.
type CreateCheckInInput struct {
	UserID          int64      `json:"userId" validate:"required,gt=0"`
	LocationID      int64      `json:"locationId" validate:"required,gt=0"`
	CrowdPerception int        `json:"crowdPerception" validate:"required,oneof=1 2 3"`
	Timestamp       *time.Time `json:"timestamp"`
}

// CheckInOutput is the stored check-in and the sample derived from it.
type CheckInOutput struct {
	CheckIn    *entity.CheckIn    `json:"checkIn"`
	CrowdLevel *entity.CrowdLevel `json:"crowdLevel"`
}

// CheckInUsecase defines check-in recording and lookups.
type CheckInUsecase interface {
	// CreateCheckIn stores the check-in and its derived crowd level sample atomically.
	CreateCheckIn(ctx context.Context, input *CreateCheckInInput) (*CheckInOutput, error)
	GetCheckInsByLocation(ctx context.Context, locationID int64) ([]*entity.CheckIn, error)
	GetCheckInsByUser(ctx context.Context, userID int64) ([]*entity.CheckIn, error)
}
