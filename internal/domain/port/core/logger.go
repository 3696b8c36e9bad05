package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for statement-level detail such as SQL traces
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for requests, ledger changes and OCR calls
	LogLevelInfo
	// LogLevelWarn for recoverable problems
	LogLevelWarn
	// LogLevelError for failed operations
	LogLevelError
)

// Logger is the structured logger used across the service.
// Fields are attached as key/value pairs.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)
	// With returns a child logger that adds fields to every entry
	With(fields map[string]any) Logger
	// Flush writes any buffered entries
	Flush() error
}
