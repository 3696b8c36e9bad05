package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDHeader names the optional header tying an OCR call to an account
const UserIDHeader = "X-User-ID"

// OCRHandler handles region detection and text extraction requests
type OCRHandler struct {
	ocrUseCase usecase.OCRUseCase
	logger     coreport.Logger
}

// NewOCRHandler creates a new OCR handler instance
func NewOCRHandler(ocrUseCase usecase.OCRUseCase, logger coreport.Logger) *OCRHandler {
	return &OCRHandler{
		ocrUseCase: ocrUseCase,
		logger:     logger,
	}
}

// DetectRegions handles POST /api/detect-regions
func (h *OCRHandler) DetectRegions(c *gin.Context) {
	const prefix = "Error detecting regions"

	if err := h.ocrUseCase.Available(); err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	var req dto.DetectRegionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	regions, err := h.detect(c.Request.Context(), req.ImageBase64)
	h.record(c, entity.OperationDetectRegions, err, fmt.Sprintf("%d regions", len(regions)))
	if err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	c.JSON(http.StatusOK, dto.NewRegionsResponse(regions))
}

func (h *OCRHandler) detect(ctx context.Context, encoded string) ([]entity.Region, error) {
	image, err := h.ocrUseCase.DecodeImage(encoded)
	if err != nil {
		return nil, err
	}
	return h.ocrUseCase.DetectRegions(ctx, image)
}

// ExtractText handles POST /api/extract-text
func (h *OCRHandler) ExtractText(c *gin.Context) {
	const prefix = "Error extracting text"

	if err := h.ocrUseCase.Available(); err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	var req dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	text, err := h.extract(c.Request.Context(), req.ImageBase64, dto.ToEntities(req.Regions))
	h.record(c, entity.OperationExtractText, err, fmt.Sprintf("%d characters", len(text)))
	if err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	c.JSON(http.StatusOK, dto.ExtractTextResponse{ExtractedText: text})
}

// extract leaves the image undecoded when every region is inactive
func (h *OCRHandler) extract(ctx context.Context, encoded string, regions []entity.Region) (string, error) {
	if len(entity.ActiveRegionsInOrder(regions)) == 0 {
		return "", nil
	}
	image, err := h.ocrUseCase.DecodeImage(encoded)
	if err != nil {
		return "", err
	}
	return h.ocrUseCase.ExtractText(ctx, image, regions)
}

// ProcessDocument handles POST /api/process-document with a multipart "file".
// Each detected region carries the uploaded image as base64.
func (h *OCRHandler) ProcessDocument(c *gin.Context) {
	const prefix = "Error processing document"

	if err := h.ocrUseCase.Available(); err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBindError(c, err)
		return
	}

	regions, err := h.processUpload(c.Request.Context(), fileHeader.Open)
	h.record(c, entity.OperationProcessDocument, err, fmt.Sprintf("%s: %d regions", fileHeader.Filename, len(regions)))
	if err != nil {
		respondError(c, h.logger, err, prefix)
		return
	}

	c.JSON(http.StatusOK, dto.NewRegionsResponse(regions))
}

func (h *OCRHandler) processUpload(ctx context.Context, open func() (multipart.File, error)) ([]entity.Region, error) {
	file, err := open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerr.ErrInvalidImage, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerr.ErrInvalidImage, err)
	}

	image, err := h.ocrUseCase.ValidateImage(data)
	if err != nil {
		return nil, err
	}

	regions, err := h.ocrUseCase.DetectRegions(ctx, image)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(image.Data)
	for i := range regions {
		regions[i].Base64Data = encoded
	}
	return regions, nil
}

// ListProcessingLogs handles GET /api/users/:id/processing-logs?limit=
func (h *OCRHandler) ListProcessingLogs(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	userID := c.Param("id")
	logs, err := h.ocrUseCase.ListProcessingLogs(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, h.logger, err, "Error listing processing logs")
		return
	}

	c.JSON(http.StatusOK, dto.NewProcessingLogListResponse(userID, logs))
}

// record stores an audit entry when the caller identified itself.
// The entry is written even if the client has gone away.
func (h *OCRHandler) record(c *gin.Context, operation entity.Operation, callErr error, details string) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		return
	}
	h.ocrUseCase.RecordProcessing(context.WithoutCancel(c.Request.Context()), userID, operation, callErr, details)
}
