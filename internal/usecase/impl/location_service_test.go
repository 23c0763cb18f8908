package impl

import (
	"context"
	"testing"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveInput(name string, lat, lng float64) *usecase.CreateLocationInput {
	return &usecase.CreateLocationInput{
		Name:      name,
		Address:   name + " street",
		Latitude:  ptr(lat),
		Longitude: ptr(lng),
	}
}

func TestCrowdMapService_ResolveLocation_Proximity(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	first, err := f.srv.ResolveLocation(ctx, resolveInput("Corner", 40.71280, -74.00600))
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := f.srv.ResolveLocation(ctx, resolveInput("Corner again", 40.71281, -74.00601))
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Location.ID, second.Location.ID)
	assert.Equal(t, "Corner", second.Location.Name)

	third, err := f.srv.ResolveLocation(ctx, resolveInput("Park", 40.7200, -74.0000))
	require.NoError(t, err)
	assert.True(t, third.Created)
	assert.NotEqual(t, first.Location.ID, third.Location.ID)
}

func TestCrowdMapService_ResolveLocation_PlaceID(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	input := resolveInput("Museum", 48.8606, 2.3376)
	input.PlaceID = ptr("abc")
	first, err := f.srv.ResolveLocation(ctx, input)
	require.NoError(t, err)

	moved := resolveInput("Museum", 10, 10)
	moved.PlaceID = ptr("abc")
	second, err := f.srv.ResolveLocation(ctx, moved)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Location.ID, second.Location.ID)
}

func TestCrowdMapService_ResolveLocation_Defaults(t *testing.T) {
	tests := []struct {
		name            string
		input           *usecase.CreateLocationInput
		wantCategory    string
		wantIcon        string
		wantDescription string
		wantImageURL    string
	}{
		{
			name:            "bare input",
			input:           resolveInput("Somewhere", 1, 1),
			wantCategory:    entity.CategoryOther,
			wantIcon:        entity.DefaultIcon,
			wantDescription: "Location at Somewhere street",
			wantImageURL:    "https://example.com/place.jpg",
		},
		{
			name: "known category",
			input: func() *usecase.CreateLocationInput {
				in := resolveInput("Beans", 2, 2)
				in.Category = "Coffee shop"
				in.Description = ptr("Good beans")
				in.ImageURL = ptr("https://example.com/beans.jpg")

				return in
			}(),
			wantCategory:    "Coffee shop",
			wantIcon:        "fa-coffee",
			wantDescription: "Good beans",
			wantImageURL:    "https://example.com/beans.jpg",
		},
		{
			name: "unmapped category",
			input: func() *usecase.CreateLocationInput {
				in := resolveInput("Stall", 3, 3)
				in.Category = "Food truck"

				return in
			}(),
			wantCategory:    "Food truck",
			wantIcon:        entity.DefaultIcon,
			wantDescription: "Location at Stall street",
			wantImageURL:    "https://example.com/place.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t, newTestConfig())

			out, err := f.srv.ResolveLocation(context.Background(), tt.input)
			require.NoError(t, err)
			require.True(t, out.Created)

			loc := out.Location
			assert.Equal(t, tt.wantCategory, loc.Category)
			assert.Equal(t, tt.wantIcon, loc.Icon)
			require.NotNil(t, loc.Description)
			assert.Equal(t, tt.wantDescription, *loc.Description)
			require.NotNil(t, loc.ImageURL)
			assert.Equal(t, tt.wantImageURL, *loc.ImageURL)
			assert.Nil(t, loc.PlaceID)
		})
	}
}

func TestCrowdMapService_ResolveLocation_Validation(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	missingLat := resolveInput("Nowhere", 0, 0)
	missingLat.Latitude = nil
	_, err := f.srv.ResolveLocation(ctx, missingLat)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.srv.ResolveLocation(ctx, resolveInput("Off the map", 91, 0))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	locations, err := f.srv.GetLocations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestCrowdMapService_CreateLocation(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	_, err := f.srv.CreateLocation(ctx, resolveInput("No category", 1, 1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	in := resolveInput("Gym", 1, 1)
	in.Category = "Gym"
	first, err := f.srv.CreateLocation(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "fa-dumbbell", first.Icon)
	assert.Nil(t, first.Description)

	second, err := f.srv.CreateLocation(ctx, in)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	gyms, err := f.srv.GetLocationsByCategory(ctx, "Gym")
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}

func TestCrowdMapService_GetLocation(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	_, err := f.srv.GetLocation(ctx, -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	_, err = f.srv.GetLocationWithCrowd(ctx, 7)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)

	out, err := f.srv.ResolveLocation(ctx, resolveInput("Quiet", 5, 5))
	require.NoError(t, err)

	view, err := f.srv.GetLocationWithCrowd(ctx, out.Location.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Location.ID, view.ID)
	assert.Nil(t, view.CrowdLevel)
}

func TestCrowdMapService_GetNearbyLocations(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	far, err := f.srv.ResolveLocation(ctx, resolveInput("Far", 40.7250, -74.0000))
	require.NoError(t, err)
	near, err := f.srv.ResolveLocation(ctx, resolveInput("Near", 40.7130, -74.0060))
	require.NoError(t, err)
	_, err = f.srv.ResolveLocation(ctx, resolveInput("Other city", 34.0522, -118.2437))
	require.NoError(t, err)

	nearby, err := f.srv.GetNearbyLocations(ctx, &usecase.NearbyQuery{
		Latitude:     ptr(40.7128),
		Longitude:    ptr(-74.0060),
		RadiusMeters: ptr(2000.0),
	})
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, near.Location.ID, nearby[0].ID)
	assert.Equal(t, far.Location.ID, nearby[1].ID)
	assert.Less(t, nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	assert.Nil(t, nearby[0].Distance)

	defaultRadius, err := f.srv.GetNearbyLocations(ctx, &usecase.NearbyQuery{
		Latitude:  ptr(40.7128),
		Longitude: ptr(-74.0060),
	})
	require.NoError(t, err)
	require.Len(t, defaultRadius, 1)
	assert.Equal(t, near.Location.ID, defaultRadius[0].ID)
}

func TestCrowdMapService_GetNearbyLocations_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query *usecase.NearbyQuery
	}{
		{name: "missing latitude", query: &usecase.NearbyQuery{Longitude: ptr(0.0)}},
		{name: "zero radius", query: &usecase.NearbyQuery{Latitude: ptr(0.0), Longitude: ptr(0.0), RadiusMeters: ptr(0.0)}},
		{name: "radius above maximum", query: &usecase.NearbyQuery{Latitude: ptr(0.0), Longitude: ptr(0.0), RadiusMeters: ptr(5001.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t, newTestConfig())

			_, err := f.srv.GetNearbyLocations(context.Background(), tt.query)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
