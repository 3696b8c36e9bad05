package vision

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
)

// NewFromConfig builds the configured vision model.
// It returns nil without error when no API key is set; the OCR use case
// then reports the service as misconfigured.
func NewFromConfig(ctx context.Context, cfg config.VisionConfig, logger coreport.Logger) (coreport.VisionModel, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn("Vision API key not configured, OCR endpoints will be unavailable", map[string]any{
			"provider": cfg.Provider,
		})
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "", config.ProviderGemini:
		model, err := NewGeminiModel(ctx, GeminiOptions{
			APIKey:         cfg.APIKey,
			Model:          cfg.Model,
			BaseURL:        cfg.BaseURL,
			ThinkingBudget: cfg.ThinkingBudget,
			Timeout:        cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return model, nil
	case config.ProviderOpenAI:
		model := cfg.Model
		if strings.HasPrefix(model, "gemini") {
			model = ""
		}
		return NewOpenAIModel(OpenAIOptions{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.Provider)
	}
}
