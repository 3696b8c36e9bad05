package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	tport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

// Operation names the OCR call a processing log entry refers to
type Operation string

// Logged operations
const (
	OperationDetectRegions   Operation = "detect_regions"
	OperationExtractText     Operation = "extract_text"
	OperationProcessDocument Operation = "process_document"
)

// ProcessingStatus is the outcome of a logged operation
type ProcessingStatus string

// Processing statuses
const (
	ProcessingSucceeded ProcessingStatus = "success"
	ProcessingFailed    ProcessingStatus = "error"
)

// ProcessingLog records one OCR call made on behalf of a user
type ProcessingLog struct {
	ID        uint64
	UserID    string
	Operation Operation
	Status    ProcessingStatus
	Details   string
	CreatedAt time.Time
}

// NewProcessingLog creates a log entry stamped with the current time
func NewProcessingLog(
	userID string,
	operation Operation,
	status ProcessingStatus,
	details string,
	timeProvider tport.TimeProvider,
) (*ProcessingLog, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	return &ProcessingLog{
		UserID:    userID,
		Operation: operation,
		Status:    status,
		Details:   details,
		CreatedAt: timeProvider.Now(),
	}, nil
}
