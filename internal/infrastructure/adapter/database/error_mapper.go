package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainErr.ErrDuplicateUser
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateUser

	case strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "sql: database is closed"):
		return fmt.Errorf("%w: %s: %s", domainErr.ErrDatabaseConnection, operation, err.Error())

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %s", domainErr.ErrInternalServer, operation, err.Error())
	}
}
