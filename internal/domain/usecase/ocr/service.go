package ocr

import (
	"strings"

	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
)

// Defaults applied when Config leaves a field empty
const (
	DefaultMaxImageBytes       int64 = 20 * 1024 * 1024
	DefaultProcessingLogLimit        = 50
	MaxProcessingLogLimit            = 500
)

// DefaultSupportedFormats are the image subtypes accepted by the vision models
var DefaultSupportedFormats = []string{"png", "jpeg", "gif", "webp"}

// Config holds the image limits and the configured provider name
type Config struct {
	Provider         string
	MaxImageBytes    int64
	SupportedFormats []string
}

// OCRUseCase reads documents through a vision model.
// A nil model leaves the service up but every OCR call fails as misconfigured.
type OCRUseCase struct {
	model        coreport.VisionModel
	userRepo     persistence.UserRepository
	logRepo      persistence.ProcessingLogRepository
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	configured    string
	maxImageBytes int64
	formats       map[string]struct{}
}

var _ usecase.OCRUseCase = (*OCRUseCase)(nil)

// NewOCRUseCase creates a new OCRUseCase
func NewOCRUseCase(
	model coreport.VisionModel,
	userRepo persistence.UserRepository,
	logRepo persistence.ProcessingLogRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *OCRUseCase {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultMaxImageBytes
	}
	if len(cfg.SupportedFormats) == 0 {
		cfg.SupportedFormats = DefaultSupportedFormats
	}

	formats := make(map[string]struct{}, len(cfg.SupportedFormats))
	for _, f := range cfg.SupportedFormats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "jpg" {
			f = "jpeg"
		}
		formats["image/"+f] = struct{}{}
	}

	return &OCRUseCase{
		model:         model,
		userRepo:      userRepo,
		logRepo:       logRepo,
		idGenerator:   idGenerator,
		timeProvider:  timeProvider,
		logger:        logger,
		configured:    cfg.Provider,
		maxImageBytes: cfg.MaxImageBytes,
		formats:       formats,
	}
}

// Available reports whether a vision model is configured
func (o *OCRUseCase) Available() error {
	if o.model == nil {
		return errs.NewMisconfiguredServiceError(o.configured)
	}
	return nil
}

func (o *OCRUseCase) provider() string {
	if o.model == nil {
		return "none"
	}
	return o.model.Name()
}
