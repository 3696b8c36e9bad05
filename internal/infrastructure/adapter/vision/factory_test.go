package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("missing key leaves the model unset", func(t *testing.T) {
		model, err := NewFromConfig(ctx, config.VisionConfig{Provider: config.ProviderGemini}, log)
		require.NoError(t, err)
		assert.Nil(t, model)
	})

	t.Run("gemini", func(t *testing.T) {
		model, err := NewFromConfig(ctx, config.VisionConfig{Provider: config.ProviderGemini, APIKey: "k"}, log)
		require.NoError(t, err)
		assert.Equal(t, "gemini", model.Name())
	})

	t.Run("openai ignores a gemini model name", func(t *testing.T) {
		model, err := NewFromConfig(ctx, config.VisionConfig{
			Provider: config.ProviderOpenAI,
			APIKey:   "k",
			Model:    "gemini-2.0-flash",
		}, log)
		require.NoError(t, err)
		require.IsType(t, &OpenAIModel{}, model)
		assert.Equal(t, DefaultOpenAIModel, model.(*OpenAIModel).model)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewFromConfig(ctx, config.VisionConfig{Provider: "claude-vision", APIKey: "k"}, log)
		assert.Error(t, err)
	})
}
