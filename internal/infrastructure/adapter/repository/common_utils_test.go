package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, ""},
		{"not found", gorm.ErrRecordNotFound, NotFoundError},
		{"translated duplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email"), DuplicateKeyError},
		{"canceled", fmt.Errorf("query: %w", context.Canceled), CanceledError},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), LockError},
		{"postgres serialization", errors.New("could not serialize access due to concurrent update"), LockError},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
		{"closed", errors.New("sql: database is closed"), ConnectionError},
		{"scan failure", errors.New(`sql: Scan error on column index 2, name "credits"`), UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	classifier := NewErrorClassifier()

	busy := classifier.ToDomainError(errors.New("database is locked"))
	assert.ErrorIs(t, busy, errs.ErrDatabaseConnection)
	assert.Contains(t, busy.Error(), "database busy")

	assert.ErrorIs(t, classifier.ToDomainError(errors.New("sql: database is closed")), errs.ErrDatabaseConnection)

	unknown := classifier.ToDomainError(errors.New("sql: Scan error on column index 2"))
	assert.ErrorIs(t, unknown, errs.ErrInternalServer)
	assert.NotErrorIs(t, unknown, errs.ErrDatabaseConnection)

	assert.ErrorIs(t, classifier.ToDomainError(context.DeadlineExceeded), context.DeadlineExceeded)
	assert.NoError(t, classifier.ToDomainError(nil))
}
