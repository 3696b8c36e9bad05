package core

// IDGenerator creates identifiers for new records
type IDGenerator interface {
	// NewUserID returns a fresh opaque user identifier
	NewUserID() string
	// NewRegionID returns the identifier for the region at a zero-based index
	NewRegionID(index int) string
}
