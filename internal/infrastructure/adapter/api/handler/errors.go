package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateUserError(err):
		return http.StatusConflict
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor builds the client-facing message. Upstream failures are
// prefixed with what was being attempted; store failures are not detailed.
func messageFor(err error, upstreamPrefix string) string {
	var upstream *domainerr.UpstreamError
	switch {
	case errors.Is(err, domainerr.ErrMalformedUpstreamResponse):
		var malformed *domainerr.MalformedResponseError
		if errors.As(err, &malformed) {
			return malformed.Error()
		}
		return err.Error()
	case errors.Is(err, domainerr.ErrMisconfiguredService):
		var misconfigured *domainerr.MisconfiguredServiceError
		if errors.As(err, &misconfigured) {
			return misconfigured.Error()
		}
		return domainerr.ErrMisconfiguredService.Error()
	case errors.As(err, &upstream):
		return upstreamPrefix + ": " + upstream.Err.Error()
	case domainerr.IsUserNotFoundError(err):
		return "User not found"
	case domainerr.IsNotFoundError(err):
		return "Not found"
	case domainerr.IsClientError(err):
		return err.Error()
	default:
		return "Internal server error"
	}
}

// respondError writes the error body and logs server-side failures
func respondError(c *gin.Context, logger coreport.Logger, err error, upstreamPrefix string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		}
		var lf interface{ LogFields() map[string]any }
		if errors.As(err, &lf) {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}
	_ = c.Error(err)

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageFor(err, upstreamPrefix),
	})
}

// respondBindError reports a request body that failed to bind or validate
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
