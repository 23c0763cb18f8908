package model

import "time"

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The unique index enforces at most one favorite per user/location pair.
type FavoriteModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	UserID     int64 `gorm:"not null;uniqueIndex:idx_favorites_user_location,priority:1"`
	LocationID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_location,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
