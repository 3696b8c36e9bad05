package user

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
)

// GetOrCreateUser returns the account registered under email, creating it when absent.
// A concurrent creation of the same email resolves to the row that won the insert.
func (u *UserUseCase) GetOrCreateUser(ctx context.Context, email string) (*entity.User, error) {
	normalized, err := entity.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, normalized)
	if err == nil {
		return existing, nil
	}
	if !errs.IsUserNotFoundError(err) {
		return nil, err
	}

	user, err := entity.NewUser(u.idGenerator.NewUserID(), normalized, u.initialCredits, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if !errs.IsDuplicateUserError(err) {
			u.logger.Error("Failed to create user", map[string]any{
				"email": normalized,
				"error": err.Error(),
			})
			return nil, err
		}

		winner, getErr := u.userRepo.GetByEmail(ctx, normalized)
		if getErr != nil {
			if errs.IsUserNotFoundError(getErr) {
				return nil, err
			}
			return nil, getErr
		}

		u.logger.Debug("User created concurrently, returning existing record", map[string]any{
			"userId": winner.ID,
			"email":  normalized,
		})
		return winner, nil
	}

	u.logger.Info("User created", map[string]any{
		"userId":         user.ID,
		"email":          user.Email,
		"initialCredits": user.Credits,
	})

	return user, nil
}

// SeedUsers creates an account for every configured email that does not have one yet
func (u *UserUseCase) SeedUsers(ctx context.Context, emails []string) error {
	for _, email := range emails {
		user, err := u.GetOrCreateUser(ctx, email)
		if err != nil {
			return err
		}
		u.logger.Debug("Seed user verified", map[string]any{
			"userId": user.ID,
			"email":  user.Email,
		})
	}

	u.logger.Info("Seed users created or verified", map[string]any{
		"count": len(emails),
	})
	return nil
}
