package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/smartlens-backend/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/smartlens-backend/mocks/port/persistence"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type ocrFixture struct {
	model    *coremocks.MockVisionModel
	userRepo *persistencemocks.MockUserRepository
	logRepo  *persistencemocks.MockProcessingLogRepository
	ids      *coremocks.MockIDGenerator
	clock    *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	useCase  *OCRUseCase
}

func newOCRFixture(t *testing.T, cfg Config) *ocrFixture {
	f := &ocrFixture{
		model:    coremocks.NewMockVisionModel(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		logRepo:  persistencemocks.NewMockProcessingLogRepository(t),
		ids:      coremocks.NewMockIDGenerator(t),
		clock:    coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	f.model.EXPECT().Name().Return("fake").Maybe()
	f.clock.EXPECT().Now().Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	f.clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(1500 * time.Millisecond)).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		f.logger.On(level, mock.Anything, mock.Anything).Return().Maybe()
	}
	f.ids.EXPECT().NewRegionID(mock.Anything).RunAndReturn(func(i int) string {
		return fmt.Sprintf("region_%d_1700000000000", i)
	}).Maybe()
	f.useCase = NewOCRUseCase(f.model, f.userRepo, f.logRepo, f.ids, f.clock, f.logger, cfg)
	return f
}

func TestOCRUseCase_DecodeImage(t *testing.T) {
	f := newOCRFixture(t, Config{})
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	t.Run("plain base64", func(t *testing.T) {
		img, err := f.useCase.DecodeImage(encoded)

		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MimeType)
		assert.Equal(t, pngBytes, img.Data)
	})

	t.Run("data url prefix", func(t *testing.T) {
		img, err := f.useCase.DecodeImage("data:image/png;base64," + encoded)

		require.NoError(t, err)
		assert.Equal(t, pngBytes, img.Data)
	})

	t.Run("unpadded and wrapped lines", func(t *testing.T) {
		raw := base64.RawStdEncoding.EncodeToString(pngBytes)
		img, err := f.useCase.DecodeImage(raw[:10] + "\n" + raw[10:])

		require.NoError(t, err)
		assert.Equal(t, pngBytes, img.Data)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := f.useCase.DecodeImage("%%% not base64 %%%")

		assert.ErrorIs(t, err, errs.ErrInvalidImage)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := f.useCase.DecodeImage("   ")

		assert.ErrorIs(t, err, errs.ErrInvalidImage)
	})

	t.Run("unsupported format", func(t *testing.T) {
		pdf := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"))
		_, err := f.useCase.DecodeImage(pdf)

		assert.ErrorIs(t, err, errs.ErrUnsupportedImageFormat)
	})
}

func TestOCRUseCase_ValidateImage(t *testing.T) {
	t.Run("size limit", func(t *testing.T) {
		f := newOCRFixture(t, Config{MaxImageBytes: 16})

		_, err := f.useCase.ValidateImage(pngBytes)

		assert.ErrorIs(t, err, errs.ErrImageTooLarge)
	})

	t.Run("format allow list", func(t *testing.T) {
		f := newOCRFixture(t, Config{SupportedFormats: []string{"jpg"}})

		_, err := f.useCase.ValidateImage(pngBytes)
		assert.ErrorIs(t, err, errs.ErrUnsupportedImageFormat)

		img, err := f.useCase.ValidateImage([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01"))
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.MimeType)
	})

	t.Run("gif and webp", func(t *testing.T) {
		f := newOCRFixture(t, Config{})

		img, err := f.useCase.ValidateImage([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00"))
		require.NoError(t, err)
		assert.Equal(t, "image/gif", img.MimeType)

		img, err = f.useCase.ValidateImage([]byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00"))
		require.NoError(t, err)
		assert.Equal(t, "image/webp", img.MimeType)
	})
}

func TestOCRUseCase_Misconfigured(t *testing.T) {
	ctx := context.Background()
	f := newOCRFixture(t, Config{})
	unconfigured := NewOCRUseCase(nil, f.userRepo, f.logRepo, f.ids, f.clock, f.logger, Config{})
	img := &usecase.Image{Data: pngBytes, MimeType: "image/png"}

	assert.ErrorIs(t, unconfigured.Available(), errs.ErrMisconfiguredService)

	_, err := unconfigured.DetectRegions(ctx, img)
	assert.ErrorIs(t, err, errs.ErrMisconfiguredService)

	_, err = unconfigured.ExtractText(ctx, img, nil)
	assert.ErrorIs(t, err, errs.ErrMisconfiguredService)

	f.model.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
	assert.EqualError(t, unconfigured.Available(), "Gemini API key not configured")

	openaiUnconfigured := NewOCRUseCase(nil, f.userRepo, f.logRepo, f.ids, f.clock, f.logger, Config{Provider: "openai"})
	err = openaiUnconfigured.Available()
	assert.ErrorIs(t, err, errs.ErrMisconfiguredService)
	assert.EqualError(t, err, "OpenAI API key not configured")
}

func TestOCRUseCase_DetectRegions(t *testing.T) {
	ctx := context.Background()
	img := &usecase.Image{Data: pngBytes, MimeType: "image/png"}

	t.Run("fenced reply is shaped into ordered active regions", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		reply := "```json\n[" +
			`{"description":"Title","ymin":10,"xmin":50,"ymax":90,"xmax":950},` +
			`{"description":"Body","ymin":100,"xmin":50,"ymax":800,"xmax":950},` +
			`{"description":"Footer","ymin":850,"xmin":50,"ymax":990,"xmax":950}` +
			"]\n```"
		f.model.EXPECT().Infer(ctx, mock.MatchedBy(func(req coreport.InferenceRequest) bool {
			return req.MimeType == "image/png" && req.Instruction == detectRegionsInstruction
		})).Return(reply, nil)

		regions, err := f.useCase.DetectRegions(ctx, img)

		require.NoError(t, err)
		require.Len(t, regions, 3)
		for i, r := range regions {
			assert.Equal(t, i+1, r.Order)
			assert.True(t, r.IsActive)
			assert.Equal(t, fmt.Sprintf("region_%d_1700000000000", i), r.ID)
		}
		assert.Equal(t, "Body", regions[1].Description)
		assert.Equal(t, entity.BoundingBox{YMin: 100, XMin: 50, YMax: 800, XMax: 950}, regions[1].Box)
	})

	t.Run("malformed reply", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.model.EXPECT().Infer(ctx, mock.Anything).Return("I could not find any text.", nil)

		_, err := f.useCase.DetectRegions(ctx, img)

		assert.ErrorIs(t, err, errs.ErrMalformedUpstreamResponse)
		assert.NotErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("null reply is not an empty result", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.model.EXPECT().Infer(ctx, mock.Anything).Return("null", nil)

		regions, err := f.useCase.DetectRegions(ctx, img)

		assert.ErrorIs(t, err, errs.ErrMalformedUpstreamResponse)
		assert.Nil(t, regions)
	})

	t.Run("upstream failure", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.model.EXPECT().Infer(ctx, mock.Anything).Return("", fmt.Errorf("503 service unavailable"))

		_, err := f.useCase.DetectRegions(ctx, img)

		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
		assert.Contains(t, err.Error(), "503 service unavailable")
	})
}

func TestOCRUseCase_ExtractText(t *testing.T) {
	ctx := context.Background()
	img := &usecase.Image{Data: pngBytes, MimeType: "image/png"}

	t.Run("only active regions are sent, in order", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		regions := []entity.Region{
			{ID: "r2", Order: 2, IsActive: true, Description: "second", Box: entity.BoundingBox{YMin: 500, XMax: 1000, YMax: 900}},
			{ID: "r1", Order: 1, IsActive: true, Description: "first", Box: entity.BoundingBox{YMax: 400, XMax: 1000}},
			{ID: "r3", Order: 3, IsActive: false, Description: "third"},
		}

		var sent string
		f.model.EXPECT().Infer(ctx, mock.Anything).Run(func(_ context.Context, req coreport.InferenceRequest) {
			sent = req.Instruction
		}).Return("  first text\n\nsecond text \n", nil)

		text, err := f.useCase.ExtractText(ctx, img, regions)

		require.NoError(t, err)
		assert.Equal(t, "first text\n\nsecond text", text)
		assert.Contains(t, sent, "Region 1: coordinates [0, 0, 400, 1000] - first\nRegion 2: coordinates [500, 0, 900, 1000] - second")
		assert.NotContains(t, sent, "Region 3")
		assert.NotContains(t, sent, "third")
	})

	t.Run("no active regions skips the model", func(t *testing.T) {
		f := newOCRFixture(t, Config{})

		text, err := f.useCase.ExtractText(ctx, img, []entity.Region{{Order: 1, IsActive: false}})

		require.NoError(t, err)
		assert.Equal(t, "", text)
		f.model.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.model.EXPECT().Infer(ctx, mock.Anything).Return("", context.DeadlineExceeded)

		_, err := f.useCase.ExtractText(ctx, img, []entity.Region{{Order: 1, IsActive: true}})

		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestOCRUseCase_ProcessingLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("records success and failure", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.logRepo.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.ProcessingLog) bool {
			return l.Status == entity.ProcessingSucceeded && l.Details == "3 regions"
		})).Return(nil).Once()
		f.logRepo.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.ProcessingLog) bool {
			return l.Status == entity.ProcessingFailed && l.Details == "boom"
		})).Return(errs.ErrDatabaseConnection).Once()

		f.useCase.RecordProcessing(ctx, "usr_1", entity.OperationDetectRegions, nil, "3 regions")
		f.useCase.RecordProcessing(ctx, "usr_1", entity.OperationExtractText, fmt.Errorf("boom"), "")
	})

	t.Run("anonymous calls are not recorded", func(t *testing.T) {
		f := newOCRFixture(t, Config{})

		f.useCase.RecordProcessing(ctx, "", entity.OperationDetectRegions, nil, "")

		f.logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("list uses default limit", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.userRepo.EXPECT().GetByID(ctx, "usr_1").Return(&entity.User{ID: "usr_1"}, nil)
		f.logRepo.EXPECT().ListByUser(ctx, "usr_1", DefaultProcessingLogLimit).Return([]*entity.ProcessingLog{{ID: 1}}, nil)

		logs, err := f.useCase.ListProcessingLogs(ctx, "usr_1", 0)

		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("list for unknown user", func(t *testing.T) {
		f := newOCRFixture(t, Config{})
		f.userRepo.EXPECT().GetByID(ctx, "usr_x").Return(nil, errs.ErrUserNotFound)

		_, err := f.useCase.ListProcessingLogs(ctx, "usr_x", 10)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
