package entity

// Favorite links a user to a location. At most one exists per (UserID, LocationID).
type Favorite struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"userId"`
	LocationID int64 `json:"locationId"`
}
