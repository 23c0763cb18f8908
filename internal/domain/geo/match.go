// Package geo holds the coordinate rules used to recognise known locations
// and to answer proximity queries.
package geo

import (
	"math"

	"crowdmap/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultTolerance is the per-axis coordinate delta (degrees, about 11m)
// under which two points refer to the same place.
const DefaultTolerance = 0.0001

// Matcher decides whether a stored location is the one an incoming request refers to.
type Matcher struct {
	PlaceID   string
	Point     orb.Point
	Tolerance float64
}

// NewMatcher builds a matcher for the candidate. A non-positive tolerance uses DefaultTolerance.
func NewMatcher(placeID string, lat, lng, tolerance float64) Matcher {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return Matcher{
		PlaceID:   placeID,
		Point:     orb.Point{lng, lat},
		Tolerance: tolerance,
	}
}

// Matches reports a hit on an equal non-empty place id, or on coordinates strictly
// within the tolerance on both axes.
func (m Matcher) Matches(loc *entity.Location) bool {
	if m.PlaceID != "" && loc.PlaceID != nil && *loc.PlaceID == m.PlaceID {
		return true
	}

	return math.Abs(loc.Latitude-m.Point.Lat()) < m.Tolerance &&
		math.Abs(loc.Longitude-m.Point.Lon()) < m.Tolerance
}

// Bound is the box any coordinate match must fall inside. Stores use it to
// pre-filter candidates before calling Matches.
func (m Matcher) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{m.Point.Lon() - m.Tolerance, m.Point.Lat() - m.Tolerance},
		Max: orb.Point{m.Point.Lon() + m.Tolerance, m.Point.Lat() + m.Tolerance},
	}
}

// First returns the first matching location in id order, or nil.
func (m Matcher) First(locations []*entity.Location) *entity.Location {
	var best *entity.Location
	for _, loc := range locations {
		if !m.Matches(loc) {
			continue
		}
		if best == nil || loc.ID < best.ID {
			best = loc
		}
	}

	return best
}

// DistanceMeters is the haversine distance between two locations' points.
func DistanceMeters(from orb.Point, to orb.Point) float64 {
	return orbgeo.DistanceHaversine(from, to)
}

// RadiusBound returns the bounding box enclosing a circle of radius meters around p.
func RadiusBound(p orb.Point, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(p, radiusMeters)
}
