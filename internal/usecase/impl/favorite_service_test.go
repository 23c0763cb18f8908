package impl

import (
	"context"
	"testing"

	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrowdMapService_CreateFavorite_Idempotent(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()
	input := &usecase.FavoriteInput{UserID: 1, LocationID: 2}

	first, err := f.srv.CreateFavorite(ctx, input)
	require.NoError(t, err)
	second, err := f.srv.CreateFavorite(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	favorites, err := f.srv.GetFavoritesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestCrowdMapService_DeleteFavorite_Idempotent(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()
	input := &usecase.FavoriteInput{UserID: 1, LocationID: 2}

	_, err := f.srv.CreateFavorite(ctx, input)
	require.NoError(t, err)

	require.NoError(t, f.srv.DeleteFavorite(ctx, input))
	require.NoError(t, f.srv.DeleteFavorite(ctx, input))

	favorites, err := f.srv.GetFavoritesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	again, err := f.srv.CreateFavorite(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)
}

func TestCrowdMapService_GetFavoriteLocations_SkipsMissing(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	out, err := f.srv.ResolveLocation(ctx, resolveInput("Library", 51.5, -0.12))
	require.NoError(t, err)

	_, err = f.srv.CreateFavorite(ctx, &usecase.FavoriteInput{UserID: 1, LocationID: out.Location.ID})
	require.NoError(t, err)
	_, err = f.srv.CreateFavorite(ctx, &usecase.FavoriteInput{UserID: 1, LocationID: 404})
	require.NoError(t, err)

	locations, err := f.srv.GetFavoriteLocations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, out.Location.ID, locations[0].ID)

	_, err = f.srv.CreateCrowdLevel(ctx, crowdInput(out.Location.ID, 2, 55, f.clock))
	require.NoError(t, err)

	withCrowd, err := f.srv.GetFavoriteLocationsWithCrowd(ctx, 1)
	require.NoError(t, err)
	require.Len(t, withCrowd, 1)
	require.NotNil(t, withCrowd[0].CrowdLevel)
	assert.Equal(t, 55, int(withCrowd[0].CrowdLevel.Percentage))
}

func TestCrowdMapService_Favorite_Validation(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	_, err := f.srv.CreateFavorite(ctx, &usecase.FavoriteInput{UserID: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = f.srv.DeleteFavorite(ctx, &usecase.FavoriteInput{LocationID: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.srv.GetFavoriteLocations(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}
