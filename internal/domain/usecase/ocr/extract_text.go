package ocr

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// ExtractText reads the active regions in ascending order. Inactive regions
// are never sent to the model. With no active regions the model is not called.
func (o *OCRUseCase) ExtractText(ctx context.Context, image *usecase.Image, regions []entity.Region) (string, error) {
	if err := o.Available(); err != nil {
		return "", err
	}

	active := entity.ActiveRegionsInOrder(regions)
	if len(active) == 0 {
		return "", nil
	}
	if image == nil || len(image.Data) == 0 {
		return "", errs.ErrInvalidImage
	}

	start := o.timeProvider.Now()
	reply, err := o.model.Infer(ctx, coreport.InferenceRequest{
		Image:       image.Data,
		MimeType:    image.MimeType,
		Instruction: extractionInstruction(active),
	})
	if err != nil {
		o.logger.Error("Text extraction failed", map[string]any{
			"provider": o.provider(),
			"regions":  len(active),
			"error":    err.Error(),
		})
		return "", errs.NewUpstreamError("extract text", o.provider(), err)
	}

	o.logger.Info("Text extracted", map[string]any{
		"provider":    o.provider(),
		"regions":     len(active),
		"skipped":     len(regions) - len(active),
		"duration_ms": o.timeProvider.Since(start).Milliseconds(),
	})

	return strings.TrimSpace(reply), nil
}
