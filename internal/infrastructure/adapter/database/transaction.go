package database

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var errNoTransaction = errors.New("no transaction found in context")

// txState is the transaction carried by a unit of work context
type txState struct {
	tx   *gorm.DB
	done bool
}

// UnitOfWork implements the unit of work pattern for database transactions.
// Each Begin holds one pooled connection until Commit or Rollback.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	u.logger.Debug("Began database transaction", nil)
	return context.WithValue(ctx, txKey, &txState{tx: tx}), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	state, ok := ctx.Value(txKey).(*txState)
	if !ok || state == nil || state.done {
		return errNoTransaction
	}

	state.done = true
	if err := state.tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}

	u.logger.Debug("Committed database transaction", nil)
	return nil
}

// Rollback rolls back the current transaction.
// It is a no-op once the transaction has been committed or rolled back.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	state, ok := ctx.Value(txKey).(*txState)
	if !ok || state == nil {
		return errNoTransaction
	}
	if state.done {
		return nil
	}

	state.done = true
	if err := state.tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "rollback transaction")
	}

	u.logger.Debug("Rolled back database transaction", nil)
	return nil
}

// GetUserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository bound to the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if state, ok := ctx.Value(txKey).(*txState); ok && state != nil && !state.done {
		return state.tx
	}
	return u.db
}
