package model

import "time"

// LocationModel is the GORM-specific struct for the 'locations' table.
// Coordinates are stored as double precision so tolerance comparisons match the in-process ones.
type LocationModel struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	Name        string   `gorm:"type:text;not null"`
	Category    string   `gorm:"type:varchar(100);not null;index:idx_locations_category"`
	Address     string   `gorm:"type:text;not null"`
	Description *string  `gorm:"type:text"`
	ImageURL    *string  `gorm:"column:image_url;type:text"`
	Latitude    float64  `gorm:"type:double precision;not null;index:idx_locations_coordinates"`
	Longitude   float64  `gorm:"type:double precision;not null;index:idx_locations_coordinates"`
	Distance    *float64 `gorm:"type:double precision"`
	Icon        string   `gorm:"type:varchar(100);not null"`
	PlaceID     *string  `gorm:"type:varchar(255);index:idx_locations_place_id"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
