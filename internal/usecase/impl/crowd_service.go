package impl

import (
	"context"
	"log/slog"
	"strconv"

	"crowdmap/internal/domain/crowd"
	"crowdmap/internal/domain/entity"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"
)

// GetCurrentCrowdLevel returns the latest sample of a location, or nil when there is none.
func (srv *crowdMapService) GetCurrentCrowdLevel(ctx context.Context, locationID int64) (*entity.CrowdLevel, error) {
	if err := requireID("locationId", locationID); err != nil {
		return nil, err
	}

	samples, err := srv.crowdLevelRepo.FindRecentByLocation(ctx, locationID, 1)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetCurrentCrowdLevel", slog.Int64("location_id", locationID))
	}

	return crowd.Current(samples), nil
}

// GetCrowdLevelHistory returns up to limit samples of a location, most recent first.
func (srv *crowdMapService) GetCrowdLevelHistory(ctx context.Context, locationID int64, limit *int) ([]*entity.CrowdLevel, error) {
	if err := requireID("locationId", locationID); err != nil {
		return nil, err
	}

	n := srv.settings.defaultHistoryLimit
	if limit != nil {
		n = *limit
	}
	if n <= 0 {
		return nil, validation.Invalid("limit", "gt", "0")
	}
	if n > srv.settings.maxHistoryLimit {
		return nil, validation.Invalid("limit", "max", strconv.Itoa(srv.settings.maxHistoryLimit))
	}

	samples, err := srv.crowdLevelRepo.FindRecentByLocation(ctx, locationID, n)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetCrowdLevelHistory", slog.Int64("location_id", locationID))
	}

	return samples, nil
}

// CreateCrowdLevel stores a sample after checking its level and percentage ranges.
func (srv *crowdMapService) CreateCrowdLevel(ctx context.Context, input *usecase.CreateCrowdLevelInput) (*entity.CrowdLevel, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	level, err := entity.ParseLevel(input.Level)
	if err != nil {
		return nil, validation.Invalid("level", "oneof", "1 2 3")
	}
	percentage, err := entity.NewPercentage(*input.Percentage)
	if err != nil {
		return nil, validation.Invalid("percentage", "max", strconv.Itoa(entity.MaxPercentage))
	}

	sample := &entity.CrowdLevel{
		LocationID: input.LocationID,
		Level:      level,
		Percentage: percentage,
		Timestamp:  *input.Timestamp,
		WaitTime:   input.WaitTime,
	}
	if err := srv.crowdLevelRepo.CreateCrowdLevel(ctx, sample); err != nil {
		return nil, srv.internalError(ctx, err, "CreateCrowdLevel", slog.Int64("location_id", input.LocationID))
	}

	return sample, nil
}
