package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
)

const (
	userIDPrefix = "usr_"
	userIDLength = 12
)

// UUIDGenerator derives identifiers from random UUIDs
type UUIDGenerator struct {
	timeProvider core.TimeProvider
}

// NewUUIDGenerator creates an ID generator. Region IDs embed the current
// time in milliseconds taken from timeProvider.
func NewUUIDGenerator(timeProvider core.TimeProvider) core.IDGenerator {
	return &UUIDGenerator{timeProvider: timeProvider}
}

// NewUserID returns "usr_" followed by 12 hex characters
func (g *UUIDGenerator) NewUserID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return userIDPrefix + hex[:userIDLength]
}

// NewRegionID returns "region_<index>_<unix millis>"
func (g *UUIDGenerator) NewRegionID(index int) string {
	return fmt.Sprintf("region_%d_%d", index, g.timeProvider.Now().UnixMilli())
}
