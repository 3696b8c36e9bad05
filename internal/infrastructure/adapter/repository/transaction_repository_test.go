package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/repository"
)

func TestTransactionRepository_ListAndTotals(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	repo := repository.NewTransactionRepository(tdb.Manager.DB(), tdb.Logger)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	amounts := []int64{10, -2, -100, 4}
	for i, amount := range amounts {
		tx := &entity.Transaction{
			UserID:      "usr_aaaaaaaaaaaa",
			Amount:      amount,
			Type:        entity.TypeForAmount(amount),
			Description: "Credit adjustment",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, tx))
		assert.NotZero(t, tx.ID)
	}
	require.NoError(t, repo.Create(ctx, &entity.Transaction{
		UserID: "usr_bbbbbbbbbbbb", Amount: -7, Type: entity.TypeDebit, CreatedAt: base,
	}))

	all, err := repo.ListByUser(ctx, "usr_aaaaaaaaaaaa", 100)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, int64(4), all[0].Amount, "newest first")
	assert.Equal(t, int64(10), all[3].Amount)
	assert.Equal(t, entity.TypeDebit, all[1].Type)

	limited, err := repo.ListByUser(ctx, "usr_aaaaaaaaaaaa", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	total, err := repo.TotalDebited(ctx, "usr_aaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, int64(102), total)

	none, err := repo.TotalDebited(ctx, "usr_cccccccccccc")
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestTransactionRepository_SameTimestampOrdersByID(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	repo := repository.NewTransactionRepository(tdb.Manager.DB(), tdb.Logger)
	ctx := context.Background()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, amount := range []int64{1, 2, 3} {
		require.NoError(t, repo.Create(ctx, &entity.Transaction{
			UserID: "usr_aaaaaaaaaaaa", Amount: amount, Type: entity.TypeCredit, CreatedAt: at,
		}))
	}

	list, err := repo.ListByUser(ctx, "usr_aaaaaaaaaaaa", 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{list[0].Amount, list[1].Amount, list[2].Amount})
}
