package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToUser(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Credits:   m.Credits,
		IsPro:     m.IsPro,
		CreatedAt: m.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	switch r.errorClassifier.Classify(err) {
	case NotFoundError:
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	case DuplicateKeyError:
		r.logger.Warn("Duplicate user operation", fields)
		return errs.ErrDuplicateUser
	case CanceledError:
		return err
	case LockError:
		fields["error"] = err.Error()
		r.logger.Warn(fmt.Sprintf("Database busy when %s", operation), fields)
		return r.errorClassifier.ToDomainError(err)
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return r.errorClassifier.ToDomainError(err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("id = ?", id).Take(&userModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}

	return modelToUser(&userModel), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	var userModel model.User
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("email = ?", email).Take(&userModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("getting user by email", err, map[string]any{"email": email})
	}

	return modelToUser(&userModel), nil
}

// List returns every user, oldest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Order("created_at ASC").Order("id ASC").Find(&userModels).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("listing users", err, map[string]any{})
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, modelToUser(&userModels[i]))
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:        user.ID,
		Email:     user.Email,
		Credits:   user.Credits,
		IsPro:     user.IsPro,
		CreatedAt: user.CreatedAt,
	}

	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(&userModel).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{
			"user_id": user.ID,
			"email":   user.Email,
		})
	}

	r.logger.Debug("User row inserted", map[string]any{
		"user_id": user.ID,
		"credits": user.Credits,
	})
	return nil
}

// AdjustCredits adds delta to the balance with a floor at zero in one
// UPDATE statement, then reads the row back on the same connection
func (r *UserRepository) AdjustCredits(ctx context.Context, id string, delta int64) (*entity.User, error) {
	var userModel model.User
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		result := conn.Model(&model.User{}).
			Where("id = ?", id).
			UpdateColumn("credits", clampedCredits(conn.Dialector.Name(), delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return conn.Where("id = ?", id).Take(&userModel).Error
	})
	if err != nil {
		return nil, r.handleDatabaseError("adjusting credits", err, map[string]any{
			"user_id": id,
			"delta":   delta,
		})
	}

	r.logger.Debug("User credits updated", map[string]any{
		"user_id": id,
		"delta":   delta,
		"credits": userModel.Credits,
	})
	return modelToUser(&userModel), nil
}

// clampedCredits builds the zero-floored balance expression for the dialect
func clampedCredits(dialect string, delta int64) clause.Expr {
	if dialect == "sqlite" {
		return gorm.Expr("MAX(0, credits + ?)", delta)
	}
	return gorm.Expr("GREATEST(0, credits + ?)", delta)
}
