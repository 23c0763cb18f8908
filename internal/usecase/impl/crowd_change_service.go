package impl

import (
	"context"
	"log/slog"

	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"

	"go.uber.org/fx"
)

type crowdChangeService struct {
	crowdLevelRepo repository.CrowdLevelRepository
	logger         *slog.Logger
}

// CrowdChangeServiceParams holds dependencies for the crowd change service, injected by Fx.
type CrowdChangeServiceParams struct {
	fx.In

	CrowdLevelRepo repository.CrowdLevelRepository
	Logger         *slog.Logger
}

// NewCrowdChangeService is the constructor for crowdChangeService.
func NewCrowdChangeService(params CrowdChangeServiceParams) usecase.CrowdChangeUsecase {
	return &crowdChangeService{
		crowdLevelRepo: params.CrowdLevelRepo,
		logger:         params.Logger,
	}
}

func (srv *crowdChangeService) DetectCrowdChange(ctx context.Context, event *service.CheckInEvent) (*usecase.CrowdChange, error) {
	// The event's sample and its predecessor are the two newest unless something newer arrived.
	recent, err := srv.crowdLevelRepo.FindRecentByLocation(ctx, event.LocationID, 2)
	if err != nil {
		return nil, errors.Wrapf(err, "find recent crowd levels of location %d", event.LocationID)
	}

	if len(recent) == 0 || recent[0].ID != event.CrowdLevelID {
		srv.logger.DebugContext(ctx, "Check-in event superseded",
			slog.Int64("location_id", event.LocationID),
			slog.Int64("crowd_level_id", event.CrowdLevelID),
		)

		return nil, nil
	}

	current := recent[0]
	change := &usecase.CrowdChange{
		LocationID: event.LocationID,
		CheckInID:  event.CheckInID,
		To:         current.Level,
		ObservedAt: current.Timestamp,
	}
	if len(recent) > 1 {
		previous := recent[1].Level
		if previous == current.Level {
			return nil, nil
		}
		change.From = &previous
	}

	return change, nil
}
