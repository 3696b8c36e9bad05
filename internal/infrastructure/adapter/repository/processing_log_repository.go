package repository

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProcessingLogRepository stores OCR call history using GORM
type ProcessingLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProcessingLogRepository creates a new ProcessingLogRepository instance
func NewProcessingLogRepository(db *gorm.DB, logger coreport.Logger) *ProcessingLogRepository {
	return &ProcessingLogRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// Create appends a log entry
func (r *ProcessingLogRepository) Create(ctx context.Context, log *entity.ProcessingLog) error {
	logModel := model.ProcessingLog{
		UserID:    log.UserID,
		Operation: string(log.Operation),
		Status:    string(log.Status),
		Details:   log.Details,
		CreatedAt: log.CreatedAt,
	}

	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(&logModel).Error
	})
	if err != nil {
		return r.errorClassifier.ToDomainError(err)
	}

	log.ID = logModel.ID
	return nil
}

// ListByUser returns up to limit entries for a user, newest first
func (r *ProcessingLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ProcessingLog, error) {
	var logModels []model.ProcessingLog
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("user_id = ?", userID).
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Find(&logModels).Error
	})
	if err != nil {
		r.logger.Error("Database error when listing processing logs", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err)
	}

	logs := make([]*entity.ProcessingLog, 0, len(logModels))
	for _, m := range logModels {
		logs = append(logs, &entity.ProcessingLog{
			ID:        m.ID,
			UserID:    m.UserID,
			Operation: entity.Operation(m.Operation),
			Status:    entity.ProcessingStatus(m.Status),
			Details:   m.Details,
			CreatedAt: m.CreatedAt,
		})
	}
	return logs, nil
}
