package geo

import (
	"testing"

	"crowdmap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMatcher_Matches(t *testing.T) {
	stored := &entity.Location{ID: 1, Latitude: 40.7128, Longitude: -74.0060, PlaceID: strPtr("place-1")}

	tests := []struct {
		name    string
		matcher Matcher
		want    bool
	}{
		{name: "same place id far away", matcher: NewMatcher("place-1", 10, 10, 0), want: true},
		{name: "within tolerance", matcher: NewMatcher("", 40.71285, -74.00605, 0), want: true},
		{name: "other place id within tolerance", matcher: NewMatcher("place-2", 40.71285, -74.00605, 0), want: true},
		{name: "latitude off", matcher: NewMatcher("", 40.7130, -74.0060, 0), want: false},
		{name: "custom tolerance", matcher: NewMatcher("", 40.7130, -74.0060, 0.001), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Matches(stored))
		})
	}
}

func TestMatcher_FirstPrefersLowestID(t *testing.T) {
	locations := []*entity.Location{
		{ID: 7, Latitude: 1, Longitude: 1},
		{ID: 3, Latitude: 1.00005, Longitude: 1},
		{ID: 5, Latitude: 2, Longitude: 2},
	}

	m := NewMatcher("", 1, 1, 0)
	assert.Equal(t, int64(3), m.First(locations).ID)
	assert.Nil(t, NewMatcher("", 50, 50, 0).First(locations))
}

func TestMatcher_Bound(t *testing.T) {
	b := NewMatcher("", 10, 20, 0.5).Bound()
	assert.Equal(t, orb.Point{19.5, 9.5}, b.Min)
	assert.Equal(t, orb.Point{20.5, 10.5}, b.Max)
}

func TestDistanceAndRadius(t *testing.T) {
	nyc := orb.Point{-74.0060, 40.7128}
	nearby := orb.Point{-74.0060, 40.7200}

	d := DistanceMeters(nyc, nearby)
	assert.InDelta(t, 801.5, d, 5)

	b := RadiusBound(nyc, 1000)
	assert.True(t, b.Contains(nearby))
	assert.False(t, b.Contains(orb.Point{-74.0060, 40.74}))
}
