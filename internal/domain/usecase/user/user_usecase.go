package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// UserUseCase handles accounts and the credit ledger
type UserUseCase struct {
	uow             persistence.UnitOfWork
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	idGenerator     coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	initialCredits  int64
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase.
// New accounts start with initialCredits.
func NewUserUseCase(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialCredits int64,
) *UserUseCase {
	return &UserUseCase{
		uow:             uow,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		idGenerator:     idGenerator,
		timeProvider:    timeProvider,
		logger:          logger,
		initialCredits:  initialCredits,
	}
}

// GetUser returns a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// ListUsers returns every account
func (u *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}
