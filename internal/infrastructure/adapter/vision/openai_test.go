package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
)

func TestOpenAIModel_Infer(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Hello world \n"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
		}`))
	}))
	defer server.Close()

	model := NewOpenAIModel(OpenAIOptions{APIKey: "test-key", BaseURL: server.URL + "/v1"}, logger.NewNoopLogger())

	reply, err := model.Infer(context.Background(), core.InferenceRequest{
		Image:       []byte{0x89, 'P', 'N', 'G'},
		MimeType:    "image/png",
		Instruction: "Read this",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello world", reply)
	assert.Equal(t, "openai", model.Name())
	assert.Equal(t, DefaultOpenAIModel, received["model"])

	messages := received["messages"].([]any)
	require.Len(t, messages, 1)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	assert.Equal(t, "Read this", content[0].(map[string]any)["text"])
	imageURL := content[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	assert.Equal(t, "data:image/png;base64,iVBORw==", imageURL)
}

func TestOpenAIModel_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	model := NewOpenAIModel(OpenAIOptions{APIKey: "k", BaseURL: server.URL + "/v1"}, logger.NewNoopLogger())

	_, err := model.Infer(context.Background(), core.InferenceRequest{Image: []byte("x"), MimeType: "image/png"})
	assert.Error(t, err)
}

func TestOpenAIModel_EmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "1", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	model := NewOpenAIModel(OpenAIOptions{APIKey: "k", BaseURL: server.URL + "/v1"}, logger.NewNoopLogger())

	_, err := model.Infer(context.Background(), core.InferenceRequest{Image: []byte("x"), MimeType: "image/png"})
	assert.ErrorIs(t, err, errEmptyReply)
}
