package vision

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

var errEmptyReply = errors.New("model returned no text")

// GeminiModel calls the Gemini API through the genai SDK
type GeminiModel struct {
	client         *genai.Client
	model          string
	thinkingBudget int32
	timeout        time.Duration
	logger         coreport.Logger
}

// GeminiOptions configures a GeminiModel
type GeminiOptions struct {
	APIKey         string
	Model          string
	BaseURL        string // overrides the API endpoint, used by tests
	ThinkingBudget int32
	Timeout        time.Duration
}

// NewGeminiModel creates a Gemini-backed vision model
func NewGeminiModel(ctx context.Context, opts GeminiOptions, logger coreport.Logger) (*GeminiModel, error) {
	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	budget := opts.ThinkingBudget
	if budget > 0 && !supportsThinking(model) {
		logger.Debug("Thinking budget ignored for model without thinking support", map[string]any{
			"model":  model,
			"budget": budget,
		})
		budget = 0
	}

	return &GeminiModel{
		client:         client,
		model:          model,
		thinkingBudget: budget,
		timeout:        opts.Timeout,
		logger:         logger,
	}, nil
}

// supportsThinking reports whether the model accepts a thinking config.
// Gemini 2.5 is the first family that does.
func supportsThinking(model string) bool {
	name := strings.TrimPrefix(strings.ToLower(model), "models/")
	name, ok := strings.CutPrefix(name, "gemini-")
	if !ok {
		return false
	}
	version, _, _ := strings.Cut(name, "-")
	majorStr, minorStr, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return false
	}
	minor := 0
	if minorStr != "" {
		if minor, err = strconv.Atoi(minorStr); err != nil {
			return false
		}
	}
	return major > 2 || (major == 2 && minor >= 5)
}

// Name identifies the provider
func (g *GeminiModel) Name() string {
	return "gemini"
}

// Infer sends the instruction and image as one user turn and returns the reply text
func (g *GeminiModel) Infer(ctx context.Context, req coreport.InferenceRequest) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Instruction),
		genai.NewPartFromBytes(req.Image, req.MimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{}
	if g.thinkingBudget > 0 {
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(g.thinkingBudget)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errEmptyReply
	}

	g.logger.Debug("Gemini reply received", map[string]any{
		"model":       g.model,
		"reply_bytes": len(text),
	})
	return text, nil
}
