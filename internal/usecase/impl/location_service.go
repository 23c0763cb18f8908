package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/geo"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"

	"github.com/paulmach/orb"
)

// GetLocation retrieves a location by id.
func (srv *crowdMapService) GetLocation(ctx context.Context, id int64) (*entity.Location, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	location, err := srv.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, srv.internalError(ctx, err, "GetLocation", slog.Int64("location_id", id))
	}

	return location, nil
}

// GetLocations retrieves every location.
func (srv *crowdMapService) GetLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindLocations(ctx)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetLocations")
	}

	return locations, nil
}

// GetLocationsByCategory retrieves the locations of exactly one category.
func (srv *crowdMapService) GetLocationsByCategory(ctx context.Context, category string) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindLocationsByCategory(ctx, category)
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetLocationsByCategory", slog.String("category", category))
	}

	return locations, nil
}

// CreateLocation stores a location as given. Category is required here; the icon
// falls back to the category's icon.
func (srv *crowdMapService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.Category == "" {
		return nil, validation.Invalid("category", "required", "")
	}

	location := newLocation(input)
	if location.Icon == "" {
		location.Icon = entity.IconForCategory(location.Category)
	}

	if err := srv.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, srv.internalError(ctx, err, "CreateLocation", slog.String("name", input.Name))
	}

	return location, nil
}

// ResolveLocation returns the stored location the input refers to, or creates it with defaults applied.
func (srv *crowdMapService) ResolveLocation(ctx context.Context, input *usecase.CreateLocationInput) (*usecase.ResolveLocationOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	candidate := newLocation(input)
	if candidate.Category == "" {
		candidate.Category = entity.CategoryOther
	}
	if candidate.Description == nil || *candidate.Description == "" {
		description := fmt.Sprintf("Location at %s", input.Address)
		candidate.Description = &description
	}
	if candidate.ImageURL == nil && srv.settings.defaultImageURL != "" {
		imageURL := srv.settings.defaultImageURL
		candidate.ImageURL = &imageURL
	}
	if candidate.Icon == "" {
		candidate.Icon = entity.IconForCategory(candidate.Category)
	}
	if candidate.PlaceID != nil && *candidate.PlaceID == "" {
		candidate.PlaceID = nil
	}

	var placeID string
	if candidate.PlaceID != nil {
		placeID = *candidate.PlaceID
	}
	matcher := geo.NewMatcher(placeID, candidate.Latitude, candidate.Longitude, srv.settings.dedupTolerance)

	location, created, err := srv.locationRepo.ResolveLocation(ctx, candidate, matcher)
	if err != nil {
		return nil, srv.internalError(ctx, err, "ResolveLocation",
			slog.String("place_id", placeID),
			slog.Float64("latitude", candidate.Latitude),
			slog.Float64("longitude", candidate.Longitude),
		)
	}

	if created {
		srv.log(ctx).InfoContext(ctx, "Location created", slog.Int64("location_id", location.ID))
	}

	return &usecase.ResolveLocationOutput{Location: location, Created: created}, nil
}

func newLocation(input *usecase.CreateLocationInput) *entity.Location {
	return &entity.Location{
		Name:        input.Name,
		Category:    input.Category,
		Address:     input.Address,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Latitude:    *input.Latitude,
		Longitude:   *input.Longitude,
		Distance:    input.Distance,
		Icon:        input.Icon,
		PlaceID:     input.PlaceID,
	}
}

// GetLocationWithCrowd retrieves a location together with its current crowd level.
func (srv *crowdMapService) GetLocationWithCrowd(ctx context.Context, id int64) (*usecase.LocationWithCrowd, error) {
	location, err := srv.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := srv.GetCurrentCrowdLevel(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.LocationWithCrowd{Location: location, CrowdLevel: current}, nil
}

// GetLocationsWithCrowd retrieves every location with its current crowd level.
func (srv *crowdMapService) GetLocationsWithCrowd(ctx context.Context) ([]*usecase.LocationWithCrowd, error) {
	locations, err := srv.GetLocations(ctx)
	if err != nil {
		return nil, err
	}

	return srv.withCrowd(ctx, locations)
}

// GetLocationsByCategoryWithCrowd retrieves one category's locations with their current crowd levels.
func (srv *crowdMapService) GetLocationsByCategoryWithCrowd(ctx context.Context, category string) ([]*usecase.LocationWithCrowd, error) {
	locations, err := srv.GetLocationsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return srv.withCrowd(ctx, locations)
}

func (srv *crowdMapService) withCrowd(ctx context.Context, locations []*entity.Location) ([]*usecase.LocationWithCrowd, error) {
	result := make([]*usecase.LocationWithCrowd, 0, len(locations))
	for _, location := range locations {
		current, err := srv.GetCurrentCrowdLevel(ctx, location.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &usecase.LocationWithCrowd{Location: location, CrowdLevel: current})
	}

	return result, nil
}

// GetNearbyLocations returns the locations within the query radius, nearest first.
func (srv *crowdMapService) GetNearbyLocations(ctx context.Context, query *usecase.NearbyQuery) ([]*usecase.NearbyLocation, error) {
	if err := srv.validator.Struct(query); err != nil {
		return nil, err
	}

	radius := srv.settings.defaultNearbyRadius
	if query.RadiusMeters != nil {
		radius = *query.RadiusMeters
	}
	if radius > srv.settings.maxNearbyRadius {
		return nil, validation.Invalid("radius", "max", fmt.Sprint(srv.settings.maxNearbyRadius))
	}

	center := orb.Point{*query.Longitude, *query.Latitude}
	candidates, err := srv.locationRepo.FindLocationsWithin(ctx, geo.RadiusBound(center, radius))
	if err != nil {
		return nil, srv.internalError(ctx, err, "GetNearbyLocations",
			slog.Float64("latitude", *query.Latitude),
			slog.Float64("longitude", *query.Longitude),
		)
	}

	nearby := make([]*usecase.NearbyLocation, 0, len(candidates))
	for _, location := range candidates {
		distance := geo.DistanceMeters(center, location.Point())
		if distance > radius {
			continue
		}

		current, err := srv.GetCurrentCrowdLevel(ctx, location.ID)
		if err != nil {
			return nil, err
		}
		nearby = append(nearby, &usecase.NearbyLocation{
			LocationWithCrowd: usecase.LocationWithCrowd{Location: location, CrowdLevel: current},
			DistanceMeters:    distance,
		})
	}

	slices.SortFunc(nearby, func(a, b *usecase.NearbyLocation) int {
		if c := cmp.Compare(a.DistanceMeters, b.DistanceMeters); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return nearby, nil
}
