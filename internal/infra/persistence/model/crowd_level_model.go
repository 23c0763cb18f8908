package model

import "time"

// CrowdLevelModel is the GORM-specific struct for the 'crowd_levels' table.
// It represents one point-in-time crowd observation for a location.
type CrowdLevelModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;index:idx_crowd_levels_location_recent,priority:3,sort:desc"`
	LocationID int64     `gorm:"not null;index:idx_crowd_levels_location_recent,priority:1"`
	Level      int       `gorm:"type:smallint;not null;check:chk_crowd_levels_level,level BETWEEN 1 AND 3"`
	Percentage int       `gorm:"type:smallint;not null;check:chk_crowd_levels_percentage,percentage BETWEEN 0 AND 100"`
	Timestamp  time.Time `gorm:"not null;index:idx_crowd_levels_location_recent,priority:2,sort:desc"`
	WaitTime   *int      `gorm:"check:chk_crowd_levels_wait_time,wait_time >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (CrowdLevelModel) TableName() string {
	return "crowd_levels"
}
