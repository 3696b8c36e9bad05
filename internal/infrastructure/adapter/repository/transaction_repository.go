package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a transaction and sets its store-assigned ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:      transaction.UserID,
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}

	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Create(&transactionModel).Error
	})
	if err != nil {
		return r.wrapError("creating transaction", err, transaction.UserID)
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"amount":         transaction.Amount,
		"type":           string(transaction.Type),
	})
	return nil
}

// ListByUser returns up to limit transactions for a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Where("user_id = ?", userID).
			Order("created_at DESC").
			Order("id DESC").
			Limit(limit).
			Find(&transactionModels).Error
	})
	if err != nil {
		return nil, r.wrapError("listing transactions", err, userID)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, modelToTransaction(&transactionModels[i]))
	}
	return transactions, nil
}

// TotalDebited sums the absolute amounts of the user's debits
func (r *TransactionRepository) TotalDebited(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := withConnection(ctx, r.db, func(conn *gorm.DB) error {
		return conn.Model(&model.Transaction{}).
			Select("CAST(COALESCE(SUM(ABS(amount)), 0) AS BIGINT)").
			Where("user_id = ? AND type = ?", userID, string(entity.TypeDebit)).
			Scan(&total).Error
	})
	if err != nil {
		return 0, r.wrapError("summing debits", err, userID)
	}
	return total, nil
}

func (r *TransactionRepository) wrapError(operation string, err error, userID string) error {
	if r.errorClassifier.Classify(err) == CanceledError {
		return err
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return r.errorClassifier.ToDomainError(err)
}

func modelToTransaction(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
