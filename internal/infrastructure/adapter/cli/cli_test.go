package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
	ucmocks "github.com/amirhossein-jamali/smartlens-backend/mocks/port/usecase"
)

type harness struct {
	users  *ucmocks.MockUserUseCase
	opened int
	closed int
}

func newHarness(t *testing.T) *harness {
	return &harness{users: ucmocks.NewMockUserUseCase(t)}
}

func (h *harness) factory(context.Context) (usecase.UserUseCase, func() error, error) {
	h.opened++
	return h.users, func() error {
		h.closed++
		return nil
	}, nil
}

func (h *harness) run(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	err := Run(context.Background(), h.factory, "test", args, &out, &errOut)
	return out.String(), err
}

var created = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestUsersCommands(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{
			{ID: "usr_a", Email: "a@x.com", Credits: 5, CreatedAt: created},
			{ID: "usr_b", Email: "b@x.com", Credits: 0, IsPro: true, CreatedAt: created},
		}, nil)

		out, err := h.run("users", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "usr_a")
		assert.Contains(t, out, "b@x.com")
		assert.Equal(t, 1, h.opened)
		assert.Equal(t, 1, h.closed)
	})

	t.Run("create", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().GetOrCreateUser(mock.Anything, "a@x.com").
			Return(&entity.User{ID: "usr_a", Email: "a@x.com", Credits: 5, CreatedAt: created}, nil)

		out, err := h.run("users", "create", "--email", "a@x.com")

		require.NoError(t, err)
		assert.Contains(t, out, "usr_a")
	})

	t.Run("create requires email", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("users", "create")

		assert.Error(t, err)
		assert.Equal(t, 0, h.opened)
	})
}

func TestCreditsAdjust(t *testing.T) {
	t.Run("applies the delta", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().ApplyCreditDelta(mock.Anything, "usr_a", int64(-100), "cleanup").
			Return(&entity.User{ID: "usr_a", Email: "a@x.com", Credits: 0, CreatedAt: created}, nil)

		out, err := h.run("credits", "adjust", "--user", "usr_a", "--amount", "-100", "--description", "cleanup")

		require.NoError(t, err)
		assert.Contains(t, out, "usr_a")
	})

	t.Run("dry run shows the clamped balance", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().GetUser(mock.Anything, "usr_a").
			Return(&entity.User{ID: "usr_a", Credits: 13}, nil)

		out, err := h.run("credits", "adjust", "--user", "usr_a", "--amount", "-100", "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, out, "13 -> 0")
		h.users.AssertNotCalled(t, "ApplyCreditDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("amount out of range is rejected before opening services", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("credits", "adjust", "--user", "usr_a", "--amount", "9223372036854775807")

		assert.ErrorIs(t, err, domainerr.ErrInvalidAmount)
		assert.Equal(t, 0, h.opened)
		h.users.AssertNotCalled(t, "ApplyCreditDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user still releases services", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().ApplyCreditDelta(mock.Anything, "usr_x", int64(1), "").Return(nil, domainerr.ErrUserNotFound)

		_, err := h.run("credits", "adjust", "--user", "usr_x", "--amount", "1")

		assert.ErrorIs(t, err, domainerr.ErrUserNotFound)
		assert.Equal(t, 1, h.closed)
	})
}

func TestTransactionsAndUsage(t *testing.T) {
	t.Run("transactions list", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().ListTransactions(mock.Anything, "usr_a", 10).Return([]*entity.Transaction{
			{ID: 2, UserID: "usr_a", Amount: -2, Type: entity.TypeDebit, Description: "OCR usage", CreatedAt: created},
		}, nil)

		out, err := h.run("transactions", "list", "--user", "usr_a", "--limit", "10")

		require.NoError(t, err)
		assert.Contains(t, out, "OCR usage")
		assert.Contains(t, out, "debit")
	})

	t.Run("negative limit", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("transactions", "list", "--user", "usr_a", "--limit", "-1")

		assert.Error(t, err)
	})

	t.Run("usage", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().TotalDebited(mock.Anything, "usr_a").Return(int64(102), nil)

		out, err := h.run("usage", "--user", "usr_a")

		require.NoError(t, err)
		assert.Equal(t, "usr_a debited 102 credits\n", out)
	})
}

func TestFactoryFailure(t *testing.T) {
	factory := func(context.Context) (usecase.UserUseCase, func() error, error) {
		return nil, nil, errors.New("no database")
	}

	err := Run(context.Background(), factory, "test", []string{"users", "list"}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.EqualError(t, err, "no database")
}
