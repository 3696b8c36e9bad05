package ocr

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// RecordProcessing stores an audit entry for an OCR call made for userID.
// Failures are logged and never returned to the caller.
func (o *OCRUseCase) RecordProcessing(ctx context.Context, userID string, operation entity.Operation, callErr error, details string) {
	if strings.TrimSpace(userID) == "" {
		return
	}

	status := entity.ProcessingSucceeded
	if callErr != nil {
		status = entity.ProcessingFailed
		details = callErr.Error()
	}

	entry, err := entity.NewProcessingLog(userID, operation, status, details, o.timeProvider)
	if err != nil {
		return
	}

	if err := o.logRepo.Create(ctx, entry); err != nil {
		o.logger.Warn("Failed to record processing log", map[string]any{
			"userId":    userID,
			"operation": string(operation),
			"error":     err.Error(),
		})
	}
}

// ListProcessingLogs returns the user's OCR history, newest first
func (o *OCRUseCase) ListProcessingLogs(ctx context.Context, userID string, limit int) ([]*entity.ProcessingLog, error) {
	if _, err := o.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultProcessingLogLimit
	case limit > MaxProcessingLogLimit:
		limit = MaxProcessingLogLimit
	}

	return o.logRepo.ListByUser(ctx, userID, limit)
}
