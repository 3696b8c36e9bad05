package model

import (
	"time"
)

// ProcessingLog represents the database model for OCR call history
type ProcessingLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"not null;size:32;index:idx_processing_logs_user_id"`
	Operation string    `gorm:"not null;size:32"`
	Status    string    `gorm:"not null;size:16"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProcessingLog
func (ProcessingLog) TableName() string {
	return "processing_logs"
}
