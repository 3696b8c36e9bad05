package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// TransactionRepository stores the append-only credit log
type TransactionRepository interface {
	// Create appends a transaction and fills in its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns up to limit transactions for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// TotalDebited sums the absolute amounts of the user's debits, 0 if none
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TotalDebited(ctx context.Context, userID string) (int64, error)
}
