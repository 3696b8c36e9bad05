package persistence

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// UserRepository defines the account store operations on users.
// Every call holds its own connection for the duration of the call only.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by an already normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.User, error)

	// Create inserts a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the ID or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// AdjustCredits applies delta to the stored balance with a floor at zero
	// in a single statement and returns the updated user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AdjustCredits(ctx context.Context, id string, delta int64) (*entity.User, error)
}
