package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
)

// ApplyCreditDelta changes the balance by amount with a floor at zero.
// The clamped update and the transaction row are committed together. The
// row keeps the requested amount, so after a clamp the log no longer sums
// to the balance. Amounts beyond MaxCreditDelta either way fail with
// ErrInvalidAmount before the store is touched.
func (u *UserUseCase) ApplyCreditDelta(ctx context.Context, userID string, amount int64, description string) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	transaction, err := entity.NewTransaction(userID, amount, description, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = u.uow.Rollback(txCtx)
	}()

	user, err := u.uow.GetUserRepository(txCtx).AdjustCredits(txCtx, userID, amount)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to adjust credits", map[string]any{
				"userId": userID,
				"amount": amount,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.GetTransactionRepository(txCtx).Create(txCtx, transaction); err != nil {
		u.logger.Error("Failed to record credit transaction", map[string]any{
			"userId": userID,
			"amount": amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("User credits adjusted", map[string]any{
		"userId":        userID,
		"amount":        amount,
		"type":          string(transaction.Type),
		"credits":       user.Credits,
		"transactionId": transaction.ID,
	})

	return user, nil
}
