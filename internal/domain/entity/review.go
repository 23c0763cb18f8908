package entity

import (
	"cmp"
	"time"
)

// Review is free-text feedback about a location.
type Review struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	LocationID int64     `json:"locationId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewestReviewFirst orders reviews by timestamp descending, then by id descending.
func NewestReviewFirst(a, b *Review) int {
	if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
		return c
	}

	return cmp.Compare(b.ID, a.ID)
}
