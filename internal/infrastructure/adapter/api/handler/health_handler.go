package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the health and info endpoints
const APIVersion = "1.0.0"

// StorePinger reports whether the backing store is reachable
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and API description endpoints
type HealthHandler struct {
	store StorePinger
}

// NewHealthHandler creates a new health handler instance.
// A nil store skips the reachability check.
func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unhealthy", Version: APIVersion})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Version: APIVersion})
}

// Root handles GET / with a summary of the available endpoints
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		Name:        "SmartLensOCR Backend API",
		Version:     APIVersion,
		Description: "Region detection and text extraction for document images, with a per-user credit ledger",
		Endpoints: map[string]any{
			"health": "GET /health",
			"users": map[string]string{
				"create":         "POST /api/users",
				"list":           "GET /api/users",
				"get":            "GET /api/users/:id",
				"credits":        "POST /api/users/:id/credits",
				"transactions":   "GET /api/users/:id/transactions",
				"usage":          "GET /api/users/:id/usage",
				"processingLogs": "GET /api/users/:id/processing-logs",
			},
			"ocr": map[string]string{
				"detectRegions":   "POST /api/detect-regions",
				"extractText":     "POST /api/extract-text",
				"processDocument": "POST /api/process-document",
			},
		},
	})
}
