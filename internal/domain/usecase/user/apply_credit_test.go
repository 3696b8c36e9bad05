package user

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
)

type txCtxKey struct{}

func TestUserUseCase_ApplyCreditDelta(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txCtxKey{}, "tx")

	expectUnitOfWork := func(f *fixture) {
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Maybe()
		f.uow.EXPECT().GetTransactionRepository(txCtx).Return(f.txRepo).Maybe()
		f.uow.EXPECT().Rollback(txCtx).Return(nil)
	}

	t.Run("records requested amount and commits", func(t *testing.T) {
		f := newFixture(t)
		expectUnitOfWork(f)
		f.userRepo.EXPECT().AdjustCredits(txCtx, "usr_1", int64(-100)).
			Return(&entity.User{ID: "usr_1", Credits: 0}, nil)
		f.txRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == "usr_1" &&
				tx.Amount == -100 &&
				tx.Type == entity.TypeDebit &&
				tx.Description == entity.DefaultTransactionDescription &&
				tx.CreatedAt.Equal(fixedTime)
		})).Return(nil)
		f.uow.EXPECT().Commit(txCtx).Return(nil)

		user, err := f.useCase.ApplyCreditDelta(ctx, "usr_1", -100, "")

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Credits)
	})

	t.Run("credit type for non-negative amounts", func(t *testing.T) {
		f := newFixture(t)
		expectUnitOfWork(f)
		f.userRepo.EXPECT().AdjustCredits(txCtx, "usr_1", int64(0)).
			Return(&entity.User{ID: "usr_1", Credits: 5}, nil)
		f.txRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypeCredit && tx.Description == "Promo"
		})).Return(nil)
		f.uow.EXPECT().Commit(txCtx).Return(nil)

		_, err := f.useCase.ApplyCreditDelta(ctx, "usr_1", 0, "Promo")

		require.NoError(t, err)
	})

	t.Run("amount out of range never reaches the store", func(t *testing.T) {
		for _, amount := range []int64{entity.MaxCreditDelta + 1, -entity.MaxCreditDelta - 1, math.MaxInt64, math.MinInt64} {
			f := newFixture(t)

			user, err := f.useCase.ApplyCreditDelta(ctx, "usr_1", amount, "")

			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Equal(t, errs.CodeInvalidAmount, errs.ErrorCode(err))
			assert.Nil(t, user)
			f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		}
	})

	t.Run("unknown user rolls back without a transaction row", func(t *testing.T) {
		f := newFixture(t)
		expectUnitOfWork(f)
		f.userRepo.EXPECT().AdjustCredits(txCtx, "usr_missing", int64(10)).Return(nil, errs.ErrUserNotFound)

		user, err := f.useCase.ApplyCreditDelta(ctx, "usr_missing", 10, "")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, user)
		f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("transaction insert failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		expectUnitOfWork(f)
		f.userRepo.EXPECT().AdjustCredits(txCtx, "usr_1", int64(3)).Return(&entity.User{ID: "usr_1", Credits: 8}, nil)
		f.txRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection)
		f.logger.EXPECT().Error("Failed to record credit transaction", mock.Anything).Return()

		_, err := f.useCase.ApplyCreditDelta(ctx, "usr_1", 3, "")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("begin failure", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(nil, errors.New("database is locked"))

		_, err := f.useCase.ApplyCreditDelta(ctx, "usr_1", 3, "")

		assert.EqualError(t, err, "database is locked")
	})

	t.Run("empty user id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.ApplyCreditDelta(ctx, "", 3, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
