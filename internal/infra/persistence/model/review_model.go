package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;index"`
	LocationID int64     `gorm:"not null;index"`
	Content    string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
