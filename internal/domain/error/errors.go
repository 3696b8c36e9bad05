package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest            = 4000
	CodeInvalidEmail              = 4001
	CodeInvalidAmount             = 4002
	CodeInvalidUserID             = 4003
	CodeInvalidImage              = 4004
	CodeImageTooLarge             = 4005
	CodeUnsupportedImageFormat    = 4006
	CodeMalformedUpstreamResponse = 4007
	CodeUserNotFound              = 4040
	CodeNotFound                  = 4041
	CodeDuplicateUser             = 4090

	// 5xxx - Server errors
	CodeInternalServer       = 5000
	CodeDatabaseConnection   = 5001
	CodeMisconfiguredService = 5002
	CodeUpstreamUnavailable  = 5020
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidEmail is returned when an email address cannot be parsed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount is returned when a credit delta is outside the accepted range
	ErrInvalidAmount = errors.New("invalid credit amount")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidImage is returned when image data cannot be decoded
	ErrInvalidImage = errors.New("invalid image data")

	// ErrImageTooLarge is returned when the decoded image exceeds the configured limit
	ErrImageTooLarge = errors.New("image exceeds maximum size")

	// ErrUnsupportedImageFormat is returned for image types the vision model does not accept
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrMisconfiguredService is returned when the vision model has no credentials
	ErrMisconfiguredService = errors.New("vision API key not configured")

	// ErrUpstreamUnavailable is returned when the vision model call fails
	ErrUpstreamUnavailable = errors.New("vision model unavailable")

	// ErrMalformedUpstreamResponse is returned when the vision model reply cannot be parsed
	ErrMalformedUpstreamResponse = errors.New("Invalid response format")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidImage):
		return CodeInvalidImage
	case errors.Is(err, ErrImageTooLarge):
		return CodeImageTooLarge
	case errors.Is(err, ErrUnsupportedImageFormat):
		return CodeUnsupportedImageFormat
	case errors.Is(err, ErrMalformedUpstreamResponse):
		return CodeMalformedUpstreamResponse
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrMisconfiguredService):
		return CodeMisconfiguredService
	case errors.Is(err, ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	default:
		return CodeInternalServer
	}
}

// UpstreamError carries a vision model failure together with the operation that triggered it
type UpstreamError struct {
	Operation string
	Provider  string
	Err       error
}

// Error implements the error interface for UpstreamError
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s via %s: %v", e.Operation, e.Provider, e.Err)
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports a match against ErrUpstreamUnavailable unless the cause is more specific
func (e *UpstreamError) Is(target error) bool {
	if target != ErrUpstreamUnavailable {
		return false
	}
	return !errors.Is(e.Err, ErrMalformedUpstreamResponse) && !errors.Is(e.Err, ErrMisconfiguredService)
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "upstream_error",
		"operation":  e.Operation,
		"provider":   e.Provider,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewUpstreamError wraps a vision model failure
func NewUpstreamError(operation, provider string, err error) error {
	return &UpstreamError{
		Operation: operation,
		Provider:  provider,
		Err:       err,
	}
}

// MisconfiguredServiceError names the vision provider whose key is missing
type MisconfiguredServiceError struct {
	Provider string
}

// Error implements the error interface
func (e *MisconfiguredServiceError) Error() string {
	return providerDisplayName(e.Provider) + " API key not configured"
}

// Is checks if the target error is an ErrMisconfiguredService
func (e *MisconfiguredServiceError) Is(target error) bool {
	return target == ErrMisconfiguredService
}

// NewMisconfiguredServiceError reports a missing key for provider
func NewMisconfiguredServiceError(provider string) error {
	return &MisconfiguredServiceError{Provider: provider}
}

func providerDisplayName(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "gemini":
		return "Gemini"
	case "openai":
		return "OpenAI"
	default:
		return provider
	}
}

// MalformedResponseError keeps the raw reply that failed to decode
type MalformedResponseError struct {
	Reply string
	Err   error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedUpstreamResponse, e.Err)
}

// Unwrap returns the underlying decode error
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrMalformedUpstreamResponse
func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedUpstreamResponse
}

// LogFields returns a map of fields for structured logging
func (e *MalformedResponseError) LogFields() map[string]any {
	reply := e.Reply
	if len(reply) > 200 {
		reply = reply[:200]
	}
	return map[string]any{
		"error_type": "malformed_response",
		"reply":      reply,
		"error":      e.Err.Error(),
		"error_code": CodeMalformedUpstreamResponse,
	}
}

// NewMalformedResponseError creates a decode failure error for a vision model reply
func NewMalformedResponseError(reply string, err error) error {
	return &MalformedResponseError{Reply: reply, Err: err}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsDuplicateUserError checks if the error is a uniqueness violation on users
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsClientError reports whether the error maps to a 4xx response
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
