package usecase

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// Image is a decoded upload ready to send to the vision model
type Image struct {
	Data     []byte
	MimeType string
}

// OCRUseCase defines the document reading operations
type OCRUseCase interface {
	// Available reports ErrMisconfiguredService when no vision model is set up
	Available() error

	// DecodeImage turns base64 input (optionally a data URL) into a validated image
	DecodeImage(encoded string) (*Image, error)

	// ValidateImage checks size and format of raw bytes
	ValidateImage(data []byte) (*Image, error)

	// DetectRegions asks the model for text blocks and shapes them into regions
	DetectRegions(ctx context.Context, image *Image) ([]entity.Region, error)

	// ExtractText reads the active regions in order and returns the joined text
	ExtractText(ctx context.Context, image *Image, regions []entity.Region) (string, error)

	// RecordProcessing stores an audit entry for a user's OCR call
	RecordProcessing(ctx context.Context, userID string, operation entity.Operation, callErr error, details string)

	// ListProcessingLogs returns the user's OCR history newest first
	ListProcessingLogs(ctx context.Context, userID string, limit int) ([]*entity.ProcessingLog, error)
}
