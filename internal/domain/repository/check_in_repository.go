package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// CheckInRepository stores check-in events. Check-ins are append-only.
type CheckInRepository interface {
	// CreateCheckIn assigns the next check-in id and persists the check-in.
	CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error

	// FindCheckInsByLocation retrieves all check-ins reported for a location.
	FindCheckInsByLocation(ctx context.Context, locationID int64) ([]*entity.CheckIn, error)

	// FindCheckInsByUser retrieves all check-ins reported by a user.
	FindCheckInsByUser(ctx context.Context, userID int64) ([]*entity.CheckIn, error)
}
