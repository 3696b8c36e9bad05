package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;size:32"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;not null;size:320"`
	Credits   int64     `gorm:"not null;check:chk_users_credits_non_negative,credits >= 0"`
	IsPro     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
