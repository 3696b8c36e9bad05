package vision

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

// DefaultOpenAIModel is used when no OpenAI model is configured
const DefaultOpenAIModel = openai.GPT4o

// OpenAIModel calls an OpenAI-compatible chat completion endpoint
type OpenAIModel struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  coreport.Logger
}

// OpenAIOptions configures an OpenAIModel
type OpenAIOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewOpenAIModel creates an OpenAI-backed vision model
func NewOpenAIModel(opts OpenAIOptions, logger coreport.Logger) *OpenAIModel {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIModel{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: opts.Timeout,
		logger:  logger,
	}
}

// Name identifies the provider
func (o *OpenAIModel) Name() string {
	return "openai"
}

// Infer sends the image inline as a data URL next to the instruction
func (o *OpenAIModel) Infer(ctx context.Context, req coreport.InferenceRequest) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: req.Instruction},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL(req.MimeType, req.Image),
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyReply
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyReply
	}

	o.logger.Debug("OpenAI reply received", map[string]any{
		"model":         o.model,
		"reply_bytes":   len(text),
		"total_tokens":  resp.Usage.TotalTokens,
		"finish_reason": string(resp.Choices[0].FinishReason),
	})
	return text, nil
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
