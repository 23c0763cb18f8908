package usecase

import (
	"context"
	"time"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/service"
)

// CrowdChange reports that a check-in moved a location to a different crowd level.
type CrowdChange struct {
	LocationID int64
	CheckInID  int64
	From       *entity.Level // Nil for the first sample of a location.
	To         entity.Level
	ObservedAt time.Time
}

// CrowdChangeUsecase interprets published check-in events.
type CrowdChangeUsecase interface {
	// DetectCrowdChange compares the event's sample with the one before it. It returns nil
	// when the level is unchanged or a newer sample has already superseded the event.
	DetectCrowdChange(ctx context.Context, event *service.CheckInEvent) (*CrowdChange, error)
}
