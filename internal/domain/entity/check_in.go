package entity

import "time"

// CheckIn is a user's report of the crowd level they perceive at a location.
type CheckIn struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	LocationID      int64     `json:"locationId"`
	Timestamp       time.Time `json:"timestamp"`
	CrowdPerception Level     `json:"crowdPerception"`
}
