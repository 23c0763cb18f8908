package entity

import "github.com/paulmach/orb"

// Location is a place on the map that users report crowd levels for.
// Locations are never mutated or deleted once stored.
type Location struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Distance    *float64 `json:"distance"` // Client supplied, never recomputed.
	Icon        string   `json:"icon"`
	PlaceID     *string  `json:"placeId"` // External map-provider identifier.
}

// Point returns the location as an orb point (longitude first).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// HasPlaceID reports whether the location carries a non-empty provider identifier.
func (l *Location) HasPlaceID() bool {
	return l.PlaceID != nil && *l.PlaceID != ""
}
