package entity

import (
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

// DefaultInitialCredits is the balance granted to every new account
const DefaultInitialCredits int64 = 5

var emailValidator = validator.New()

// User represents an account holding a credit balance
type User struct {
	ID        string    // Opaque identifier generated at creation
	Email     string    // Lower-cased, unique
	Credits   int64     // Never negative
	IsPro     bool      // Not changed by any credit operation
	CreatedAt time.Time // When the user was created
}

// NewUser creates a new user with the given ID, email and starting credits
func NewUser(id, email string, initialCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}

	normalized, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	if initialCredits < 0 {
		initialCredits = 0
	}

	return &User{
		ID:        id,
		Email:     normalized,
		Credits:   initialCredits,
		IsPro:     false,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail normalizes the address and checks that it is well formed
func ValidateEmail(email string) (string, error) {
	normalized := NormalizeEmail(email)
	if err := emailValidator.Var(normalized, "required,email"); err != nil {
		return "", errs.ErrInvalidEmail
	}
	return normalized, nil
}

// ClampBalance applies delta to current with a floor at zero.
// Saturates instead of wrapping on overflow.
func ClampBalance(current, delta int64) int64 {
	if delta > 0 && current > math.MaxInt64-delta {
		return math.MaxInt64
	}
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
