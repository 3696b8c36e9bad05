package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHealthRouter(store StorePinger) *gin.Engine {
	h := NewHealthHandler(store)
	router := gin.New()
	router.GET("/health", h.Health)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("reachable store", func(t *testing.T) {
		router := newHealthRouter(pingFunc(func(context.Context) error { return nil }))

		w := performRequest(router, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, dto.HealthResponse{Status: "healthy", Version: APIVersion}, resp)
	})

	t.Run("unreachable store", func(t *testing.T) {
		router := newHealthRouter(pingFunc(func(context.Context) error {
			return errors.Join(domainerr.ErrDatabaseConnection, errors.New("sql: database is closed"))
		}))

		w := performRequest(router, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp dto.HealthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
	})

	t.Run("no store configured", func(t *testing.T) {
		router := newHealthRouter(nil)

		w := performRequest(router, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
