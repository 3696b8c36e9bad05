package core

import (
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Milliseconds returns the duration as whole milliseconds
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

// TimeProvider abstracts the clock so timestamps can be fixed in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
