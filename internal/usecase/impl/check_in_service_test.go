package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	deliverycontext "crowdmap/internal/delivery/context"
	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCrowdMapService_CreateCheckIn_DerivesSample(t *testing.T) {
	tests := []struct {
		perception     int
		wantPercentage entity.Percentage
		wantWait       int
	}{
		{perception: 1, wantPercentage: 30, wantWait: 0},
		{perception: 2, wantPercentage: 60, wantWait: 15},
		{perception: 3, wantPercentage: 90, wantWait: 30},
	}

	for _, tt := range tests {
		t.Run(entity.Level(tt.perception).String(), func(t *testing.T) {
			f := newTestFixture(t, newTestConfig())
			f.publisher.On("PublishCheckInEvent", mock.Anything, mock.Anything).Return(nil).Once()

			reportedAt := f.clock.Add(-10 * time.Minute)
			out, err := f.srv.CreateCheckIn(context.Background(), &usecase.CreateCheckInInput{
				UserID:          3,
				LocationID:      5,
				CrowdPerception: tt.perception,
				Timestamp:       ptr(reportedAt),
			})
			require.NoError(t, err)

			assert.Equal(t, reportedAt, out.CheckIn.Timestamp)
			assert.Equal(t, int64(5), out.CrowdLevel.LocationID)
			assert.Equal(t, entity.Level(tt.perception), out.CrowdLevel.Level)
			assert.Equal(t, tt.wantPercentage, out.CrowdLevel.Percentage)
			require.NotNil(t, out.CrowdLevel.WaitTime)
			assert.Equal(t, tt.wantWait, *out.CrowdLevel.WaitTime)
			assert.Equal(t, f.clock, out.CrowdLevel.Timestamp)

			current, err := f.srv.GetCurrentCrowdLevel(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, out.CrowdLevel.ID, current.ID)
		})
	}
}

func TestCrowdMapService_CreateCheckIn_PublishesEvent(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	f.publisher.On("PublishCheckInEvent", mock.Anything, mock.MatchedBy(func(e *service.CheckInEvent) bool {
		return e.RequestID == "req-1" &&
			e.CheckInID == 1 &&
			e.CrowdLevelID == 1 &&
			e.UserID == 3 &&
			e.LocationID == 5 &&
			e.Level == 2 &&
			e.Percentage == 60 &&
			e.MessageID != "" &&
			e.ObservedAt.Equal(f.clock)
	})).Return(nil).Once()

	out, err := f.srv.CreateCheckIn(ctx, &usecase.CreateCheckInInput{UserID: 3, LocationID: 5, CrowdPerception: 2})
	require.NoError(t, err)
	assert.Equal(t, f.clock, out.CheckIn.Timestamp)
}

func TestCrowdMapService_CreateCheckIn_PublishFailureIsNotFatal(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	f.publisher.On("PublishCheckInEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := f.srv.CreateCheckIn(context.Background(), &usecase.CreateCheckInInput{UserID: 1, LocationID: 1, CrowdPerception: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.CheckIn.ID)

	checkIns, err := f.srv.GetCheckInsByLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, checkIns, 1)
}

func TestCrowdMapService_CreateCheckIn_InvalidPerception(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	for _, perception := range []int{0, 4, -1} {
		_, err := f.srv.CreateCheckIn(ctx, &usecase.CreateCheckInInput{UserID: 1, LocationID: 1, CrowdPerception: perception})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	checkIns, err := f.srv.GetCheckInsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, checkIns)
	f.publisher.AssertNotCalled(t, "PublishCheckInEvent", mock.Anything, mock.Anything)
}

func TestCrowdMapService_CreateCheckIn_TransactionFailure(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	f.srv.txManager = failingTxManager{err: errors.New("storage unavailable")}

	out, err := f.srv.CreateCheckIn(context.Background(), &usecase.CreateCheckInInput{UserID: 1, LocationID: 1, CrowdPerception: 1})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	f.publisher.AssertNotCalled(t, "PublishCheckInEvent", mock.Anything, mock.Anything)
}

func TestCrowdMapService_GetCheckIns(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()
	f.publisher.On("PublishCheckInEvent", mock.Anything, mock.Anything).Return(nil).Times(3)

	for _, in := range []usecase.CreateCheckInInput{
		{UserID: 1, LocationID: 10, CrowdPerception: 1},
		{UserID: 1, LocationID: 11, CrowdPerception: 2},
		{UserID: 2, LocationID: 10, CrowdPerception: 3},
	} {
		_, err := f.srv.CreateCheckIn(ctx, &in)
		require.NoError(t, err)
	}

	byLocation, err := f.srv.GetCheckInsByLocation(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, byLocation, 2)

	byUser, err := f.srv.GetCheckInsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	_, err = f.srv.GetCheckInsByUser(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}
