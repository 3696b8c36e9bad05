package ocr

import (
	"context"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// DetectRegions asks the vision model for text blocks. Regions come back in
// the model's order with orders 1..N, all active.
func (o *OCRUseCase) DetectRegions(ctx context.Context, image *usecase.Image) ([]entity.Region, error) {
	if err := o.Available(); err != nil {
		return nil, err
	}
	if image == nil || len(image.Data) == 0 {
		return nil, errs.ErrInvalidImage
	}

	start := o.timeProvider.Now()
	reply, err := o.model.Infer(ctx, coreport.InferenceRequest{
		Image:       image.Data,
		MimeType:    image.MimeType,
		Instruction: detectRegionsInstruction,
	})
	if err != nil {
		upstreamErr := errs.NewUpstreamError("detect regions", o.provider(), err)
		o.logger.Error("Region detection failed", map[string]any{
			"provider": o.provider(),
			"error":    err.Error(),
		})
		return nil, upstreamErr
	}

	raw, err := parseRegions(reply)
	if err != nil {
		fields := map[string]any{"provider": o.provider()}
		if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
			fields = lf.LogFields()
		}
		o.logger.Warn("Unparsable region detection reply", fields)
		return nil, err
	}

	regions := entity.ShapeRegions(raw, o.idGenerator.NewRegionID)

	o.logger.Info("Regions detected", map[string]any{
		"provider":    o.provider(),
		"regions":     len(regions),
		"duration_ms": o.timeProvider.Since(start).Milliseconds(),
	})

	return regions, nil
}
