package user

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// ListTransactions returns the user's credit history, newest first
func (u *UserUseCase) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	return u.transactionRepo.ListByUser(ctx, userID, normalizeLimit(limit))
}

// TotalDebited returns the sum of all requested debits for the user
func (u *UserUseCase) TotalDebited(ctx context.Context, userID string) (int64, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return 0, err
	}

	return u.transactionRepo.TotalDebited(ctx, userID)
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return usecase.DefaultTransactionLimit
	case limit > usecase.MaxTransactionLimit:
		return usecase.MaxTransactionLimit
	default:
		return limit
	}
}
