package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/geo"
	"crowdmap/internal/errors"

	"github.com/paulmach/orb"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location persistence.
// Iteration order of list results is not part of the contract.
type LocationRepository interface {
	// CreateLocation assigns the next location id and persists the location unconditionally.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// ResolveLocation returns the first stored location accepted by matcher, or stores
	// candidate when none is. The check and the insert are atomic with respect to other
	// ResolveLocation calls. created reports whether candidate was stored.
	ResolveLocation(ctx context.Context, candidate *entity.Location, matcher geo.Matcher) (location *entity.Location, created bool, err error)

	// FindLocationByID retrieves a location by id.
	FindLocationByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindLocations retrieves every location.
	FindLocations(ctx context.Context) ([]*entity.Location, error)

	// FindLocationsByCategory retrieves the locations whose category equals category exactly.
	FindLocationsByCategory(ctx context.Context, category string) ([]*entity.Location, error)

	// FindLocationsWithin retrieves the locations whose coordinates fall inside bound.
	FindLocationsWithin(ctx context.Context, bound orb.Bound) ([]*entity.Location, error)

	// CountLocations returns the number of stored locations.
	CountLocations(ctx context.Context) (int64, error)
}
