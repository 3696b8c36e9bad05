package usecase

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// Transaction list limits
const (
	DefaultTransactionLimit = 100
	MaxTransactionLimit     = 1000
)

// UserUseCase defines account and ledger operations
type UserUseCase interface {
	// GetOrCreateUser returns the user with this email, creating it if absent.
	// Never fails with a duplicate error.
	GetOrCreateUser(ctx context.Context, email string) (*entity.User, error)

	// GetUser looks up a user by ID
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// ListUsers returns every account
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// SeedUsers makes sure an account exists for every given email
	SeedUsers(ctx context.Context, emails []string) error

	// ApplyCreditDelta adds amount to the balance with a floor at zero and
	// records the requested amount in the transaction log
	ApplyCreditDelta(ctx context.Context, userID string, amount int64, description string) (*entity.User, error)

	// ListTransactions returns the user's transactions newest first
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// TotalDebited returns the sum of all requested debits for the user
	TotalDebited(ctx context.Context, userID string) (int64, error)
}
