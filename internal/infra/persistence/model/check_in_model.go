package model

import "time"

// CheckInModel is the GORM-specific struct for the 'check_ins' table.
type CheckInModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	UserID          int64     `gorm:"not null;index"`
	LocationID      int64     `gorm:"not null;index"`
	Timestamp       time.Time `gorm:"not null"`
	CrowdPerception int       `gorm:"type:smallint;not null;check:chk_check_ins_perception,crowd_perception BETWEEN 1 AND 3"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "check_ins"
}
