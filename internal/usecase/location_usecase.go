package usecase

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// CreateLocationInput is the insertable shape of a location. Category, icon,
// description and image fall back to defaults when omitted.
type CreateLocationInput struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Address     string   `json:"address" validate:"required"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Distance    *float64 `json:"distance" validate:"omitempty,min=0"`
	Icon        string   `json:"icon" validate:"omitempty,max=100"`
	PlaceID     *string  `json:"placeId" validate:"omitempty,max=255"`
}

// NearbyQuery selects locations within RadiusMeters of a point.
// A nil radius uses the configured default.
type NearbyQuery struct {
	Latitude     *float64 `json:"lat" validate:"required,latitude"`
	Longitude    *float64 `json:"lng" validate:"required,longitude"`
	RadiusMeters *float64 `json:"radius" validate:"omitempty,gt=0"`
}

// --- Output DTOs ---

// LocationWithCrowd is a location together with its current crowd level (nil when it has no samples).
type LocationWithCrowd struct {
	*entity.Location
	CrowdLevel *entity.CrowdLevel `json:"crowdLevel"`
}

// NearbyLocation adds the computed distance from the query point.
// The stored Location.Distance is left untouched.
type NearbyLocation struct {
	LocationWithCrowd
	DistanceMeters float64 `json:"distanceMeters"`
}

// ResolveLocationOutput reports whether a resolve created a new location.
type ResolveLocationOutput struct {
	Location *entity.Location
	Created  bool
}

// LocationUsecase defines the interface for location lookups and creation.
type LocationUsecase interface {
	GetLocation(ctx context.Context, id int64) (*entity.Location, error)
	GetLocations(ctx context.Context) ([]*entity.Location, error)
	GetLocationsByCategory(ctx context.Context, category string) ([]*entity.Location, error)

	// CreateLocation stores a location without checking for duplicates.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)

	// ResolveLocation returns the known location matching the input's place id or
	// coordinates, or creates one when there is none.
	ResolveLocation(ctx context.Context, input *CreateLocationInput) (*ResolveLocationOutput, error)

	// The *WithCrowd variants attach each location's current crowd level.
	GetLocationWithCrowd(ctx context.Context, id int64) (*LocationWithCrowd, error)
	GetLocationsWithCrowd(ctx context.Context) ([]*LocationWithCrowd, error)
	GetLocationsByCategoryWithCrowd(ctx context.Context, category string) ([]*LocationWithCrowd, error)
	GetNearbyLocations(ctx context.Context, query *NearbyQuery) ([]*NearbyLocation, error)
}
