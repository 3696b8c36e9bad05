package vision

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
)

type capturedRequest struct {
	path string
	body string
}

func newGeminiServer(t *testing.T, captured *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		captured.body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "[{\"description\": \"Title\"}]"}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGeminiModel_Infer(t *testing.T) {
	var captured capturedRequest
	server := newGeminiServer(t, &captured)

	model, err := NewGeminiModel(context.Background(), GeminiOptions{
		APIKey:         "test-key",
		BaseURL:        server.URL + "/",
		ThinkingBudget: 4000,
	}, logger.NewNoopLogger())
	require.NoError(t, err)

	reply, err := model.Infer(context.Background(), core.InferenceRequest{
		Image:       []byte{0x89, 'P', 'N', 'G'},
		MimeType:    "image/png",
		Instruction: "Find the text blocks",
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"description": "Title"}]`, reply)
	assert.Equal(t, "gemini", model.Name())
	assert.True(t, strings.HasSuffix(captured.path, "models/"+DefaultGeminiModel+":generateContent"), captured.path)
	assert.Contains(t, captured.body, "Find the text blocks")
	assert.Contains(t, captured.body, "image/png")
	assert.NotContains(t, captured.body, "thinkingConfig")
}

func TestGeminiModel_ThinkingBudgetOnThinkingModels(t *testing.T) {
	var captured capturedRequest
	server := newGeminiServer(t, &captured)

	model, err := NewGeminiModel(context.Background(), GeminiOptions{
		APIKey:         "test-key",
		Model:          "gemini-2.5-flash",
		BaseURL:        server.URL + "/",
		ThinkingBudget: 4000,
	}, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = model.Infer(context.Background(), core.InferenceRequest{Image: []byte("x"), MimeType: "image/png"})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(captured.path, "models/gemini-2.5-flash:generateContent"), captured.path)
	assert.Contains(t, captured.body, "thinkingBudget")
}

func TestSupportsThinking(t *testing.T) {
	tests := []struct {
		model    string
		expected bool
	}{
		{"gemini-2.0-flash", false},
		{"gemini-1.5-pro", false},
		{"gemini-2.5-flash", true},
		{"gemini-2.5-pro-preview-05-06", true},
		{"models/gemini-2.5-flash", true},
		{"gemini-3-pro", true},
		{"gemini-pro-vision", false},
		{"gpt-4o", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.expected, supportsThinking(tt.model))
		})
	}
}

func TestGeminiModel_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`))
	}))
	defer server.Close()

	model, err := NewGeminiModel(context.Background(), GeminiOptions{APIKey: "k", BaseURL: server.URL + "/"}, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = model.Infer(context.Background(), core.InferenceRequest{Image: []byte("x"), MimeType: "image/png"})
	assert.Error(t, err)
}
