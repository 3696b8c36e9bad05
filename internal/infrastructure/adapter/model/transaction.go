package model

import (
	"time"
)

// Transaction represents the database model for the credit log.
// UserID is a soft reference; no foreign key is declared.
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      string    `gorm:"not null;size:32;index:idx_transactions_user_id"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"not null;size:10"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
