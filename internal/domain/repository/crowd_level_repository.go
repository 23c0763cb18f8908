package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// CrowdLevelRepository stores crowd-level samples. Samples are append-only.
type CrowdLevelRepository interface {
	// CreateCrowdLevel assigns the next sample id and persists the sample.
	CreateCrowdLevel(ctx context.Context, crowdLevel *entity.CrowdLevel) error

	// FindRecentByLocation retrieves up to limit samples of a location, most recent
	// timestamp first with ties broken by the higher id.
	FindRecentByLocation(ctx context.Context, locationID int64, limit int) ([]*entity.CrowdLevel, error)

	// CountByLocation returns the number of samples stored for a location.
	CountByLocation(ctx context.Context, locationID int64) (int64, error)
}
