package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	NotFoundError     ErrorType = "not_found"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	CanceledError     ErrorType = "canceled"
	UnknownError      ErrorType = "unknown"
)

// ErrorClassifier provides methods to classify database errors.
// Translated gorm errors are checked first, driver messages second.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return CanceledError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return UnknownError
	}
}

// ToDomainError wraps an unexpected store failure. Busy and unreachable
// stores report ErrDatabaseConnection; anything else is an internal error.
func (c *ErrorClassifier) ToDomainError(err error) error {
	switch c.Classify(err) {
	case "", CanceledError:
		return err
	case LockError:
		return fmt.Errorf("%w: database busy: %s", errs.ErrDatabaseConnection, err.Error())
	case ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "Duplicate entry")
}

// IsLockError checks if the error is due to locking.
// SQLite reports a busy database once busy_timeout has elapsed.
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the store could not be reached or was closed
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "unable to open database")
}

// withConnection runs fn on one dedicated connection and releases it when fn
// returns, on every path. A handle already bound to a transaction is used as is.
func withConnection(ctx context.Context, db *gorm.DB, fn func(conn *gorm.DB) error) error {
	db = db.WithContext(ctx)
	if inTransaction(db) {
		return fn(db)
	}
	return db.Connection(func(conn *gorm.DB) error {
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
}

func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
