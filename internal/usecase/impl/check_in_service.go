package impl

import (
	"context"
	"log/slog"

	deliverycontext "crowdmap/internal/delivery/context"
	"crowdmap/internal/domain/crowd"
	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"

	"github.com/google/uuid"
)

// CreateCheckIn stores the check-in and the sample derived from it in one transaction,
// then publishes a check-in event. A failed publish is logged and does not fail the call.
func (srv *crowdMapService) CreateCheckIn(ctx context.Context, input *usecase.CreateCheckInInput) (*usecase.CheckInOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	perception, err := entity.ParseLevel(input.CrowdPerception)
	if err != nil {
		return nil, validation.Invalid("crowdPerception", "oneof", "1 2 3")
	}

	now := srv.now()
	checkIn := &entity.CheckIn{
		UserID:          input.UserID,
		LocationID:      input.LocationID,
		Timestamp:       now,
		CrowdPerception: perception,
	}
	if input.Timestamp != nil {
		checkIn.Timestamp = *input.Timestamp
	}

	sample, err := crowd.DeriveFromCheckIn(checkIn, now)
	if err != nil {
		return nil, validation.Invalid("crowdPerception", "oneof", "1 2 3")
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewCheckInRepository().CreateCheckIn(ctx, checkIn); err != nil {
			return errors.Wrap(err, "create check-in")
		}
		if err := txRepoFactory.NewCrowdLevelRepository().CreateCrowdLevel(ctx, sample); err != nil {
			return errors.Wrap(err, "create derived crowd level")
		}

		return nil
	})
	if err != nil {
		return nil, srv.internalError(ctx, err, "CreateCheckIn",
			slog.Int64("user_id", input.UserID),
			slog.Int64("location_id", input.LocationID),
		)
	}

	srv.publishCheckIn(ctx, checkIn, sample)

	return &usecase.CheckInOutput{CheckIn: checkIn, CrowdLevel: sample}, nil
}

func (srv *crowdMapService) publishCheckIn(ctx context.Context, checkIn *entity.CheckIn, sample *entity.CrowdLevel) {
	if srv.publisher == nil {
		return
	}

	event := &service.CheckInEvent{
		MessageID:    uuid.New().String(),
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		CheckInID:    checkIn.ID,
		CrowdLevelID: sample.ID,
		UserID:       checkIn.UserID,
		LocationID:   checkIn.LocationID,
		Level:        int(sample.Level),
		Percentage:   int(sample.Percentage),
		WaitTime:     sample.WaitTime,
		ObservedAt:   sample.Timestamp,
	}
	if err := srv.publisher.PublishCheckInEvent(ctx, event); err != nil {
		srv.log(ctx).WarnContext(ctx, "Failed to publish check-in event",
			slog.Int64("check_in_id", checkIn.ID),
			slog.String("message_id", event.MessageID),
			slog.Any("error", err),
		)
	}
}

// GetCheckInsByLocation retrieves the check-ins reported for a location.
func (srv *crowdMapService) GetCheckInsByLocation(ctx context.Context, locationID int64) ([]*entity.CheckIn, error) {
	if err := requireID("locationId", locationID); err != nil {
		return nil, err
	}

	checkIns, err := srv.checkInRepo.FindCheckInsByLocation(ctx, locationID)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetCheckInsByLocation", slog.Int64("location_id", locationID))
	}

	return checkIns, nil
}

// GetCheckInsByUser retrieves the check-ins reported by a user.
func (srv *crowdMapService) GetCheckInsByUser(ctx context.Context, userID int64) ([]*entity.CheckIn, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}

	checkIns, err := srv.checkInRepo.FindCheckInsByUser(ctx, userID)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetCheckInsByUser", slog.Int64("user_id", userID))
	}

	return checkIns, nil
}
