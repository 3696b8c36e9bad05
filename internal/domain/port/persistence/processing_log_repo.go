package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// ProcessingLogRepository stores the OCR call history
type ProcessingLogRepository interface {
	// Create appends a log entry
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, log *entity.ProcessingLog) error

	// ListByUser returns up to limit entries for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ProcessingLog, error)
}
