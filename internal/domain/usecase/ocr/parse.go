package ocr

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smartlens-backend/internal/domain/error"
)

var errNullReply = errors.New("reply is null")

// stripCodeFence returns the body of a markdown fenced block, or the input
// unchanged when it does not start with a fence
func stripCodeFence(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	parts := strings.SplitN(text, "```", 3)
	body := parts[1]
	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		body = body[4:]
	}
	return strings.TrimSpace(body)
}

// parseRegions decodes the detection reply into raw descriptors.
// A bare array is expected; an object with a "regions" array is also accepted.
func parseRegions(reply string) ([]entity.RawRegion, error) {
	body := stripCodeFence(reply)

	var raw []entity.RawRegion
	arrErr := json.Unmarshal([]byte(body), &raw)
	if arrErr == nil {
		if raw == nil {
			return nil, errs.NewMalformedResponseError(reply, errNullReply)
		}
		return raw, nil
	}

	var wrapped struct {
		Regions []entity.RawRegion `json:"regions"`
	}
	if err := json.Unmarshal([]byte(body), &wrapped); err == nil && wrapped.Regions != nil {
		return wrapped.Regions, nil
	}

	return nil, errs.NewMalformedResponseError(reply, arrErr)
}
