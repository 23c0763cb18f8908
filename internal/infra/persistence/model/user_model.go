package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_username"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	DisplayName  *string `gorm:"type:varchar(255)"`
	Initials     *string `gorm:"type:varchar(16)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
