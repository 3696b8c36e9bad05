package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	tport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

// TransactionType labels the direction of a credit change
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// DefaultTransactionDescription is used when the caller gives no description
const DefaultTransactionDescription = "Credit adjustment"

// MaxCreditDelta bounds the magnitude of a single credit change
const MaxCreditDelta int64 = 1_000_000_000

// Transaction is an append-only record of a requested credit change.
// Amount keeps the requested value even when the balance was clamped.
type Transaction struct {
	ID          uint64          // Assigned by the store
	UserID      string          // Soft reference to the user
	Amount      int64           // Requested delta, positive or negative
	Type        TransactionType // Derived from the sign of Amount
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a transaction record for a requested delta
func NewTransaction(
	userID string,
	amount int64,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	if strings.TrimSpace(description) == "" {
		description = DefaultTransactionDescription
	}

	return &Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        TypeForAmount(amount),
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// ValidateAmount rejects deltas outside [-MaxCreditDelta, MaxCreditDelta]
func ValidateAmount(amount int64) error {
	if amount < -MaxCreditDelta || amount > MaxCreditDelta {
		return fmt.Errorf("%w: %d is outside [-%d, %d]", errs.ErrInvalidAmount, amount, MaxCreditDelta, MaxCreditDelta)
	}
	return nil
}

// TypeForAmount returns debit for negative amounts and credit otherwise
func TypeForAmount(amount int64) TransactionType {
	if amount < 0 {
		return TypeDebit
	}
	return TypeCredit
}
