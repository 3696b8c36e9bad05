package dto

import (
	"time"

	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/entity"
)

// BoxDTO is a bounding box in 0-1000 coordinates
type BoxDTO struct {
	YMin float64 `json:"ymin"`
	XMin float64 `json:"xmin"`
	YMax float64 `json:"ymax"`
	XMax float64 `json:"xmax"`
}

// RegionDTO is a region as exchanged with the client
type RegionDTO struct {
	ID            string  `json:"id"`
	Box           BoxDTO  `json:"box"`
	Order         int     `json:"order"`
	Description   string  `json:"description"`
	ExtractedText *string `json:"extractedText,omitempty"`
	IsActive      bool    `json:"isActive"`
	Base64Data    string  `json:"base64Data,omitempty"`
}

// RegionInput is a region sent back by the client for extraction
type RegionInput struct {
	ID            string  `json:"id"`
	Box           BoxDTO  `json:"box"`
	Order         int     `json:"order"`
	Description   string  `json:"description"`
	ExtractedText *string `json:"extractedText"`
	IsActive      *bool   `json:"isActive" binding:"required"`
}

// DetectRegionsRequest is the body of POST /api/detect-regions
type DetectRegionsRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// ExtractTextRequest is the body of POST /api/extract-text
type ExtractTextRequest struct {
	ImageBase64 string        `json:"imageBase64" binding:"required"`
	Regions     []RegionInput `json:"regions" binding:"required,dive"`
}

// RegionsResponse wraps detected regions
type RegionsResponse struct {
	Regions []RegionDTO `json:"regions"`
}

// ExtractTextResponse carries the text of the active regions
type ExtractTextResponse struct {
	ExtractedText string `json:"extractedText"`
}

// ProcessingLogResponse is one OCR audit entry
type ProcessingLogResponse struct {
	ID        uint64    `json:"id"`
	UserID    string    `json:"userId"`
	Operation string    `json:"operation"`
	Status    string    `json:"status"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// ProcessingLogListResponse wraps GET /api/users/:id/processing-logs
type ProcessingLogListResponse struct {
	UserID string                  `json:"userId"`
	Logs   []ProcessingLogResponse `json:"logs"`
}

// NewRegionsResponse maps entity regions to their JSON shape
func NewRegionsResponse(regions []entity.Region) RegionsResponse {
	out := RegionsResponse{Regions: make([]RegionDTO, 0, len(regions))}
	for _, r := range regions {
		out.Regions = append(out.Regions, RegionDTO{
			ID:            r.ID,
			Box:           BoxDTO(r.Box),
			Order:         r.Order,
			Description:   r.Description,
			ExtractedText: r.ExtractedText,
			IsActive:      r.IsActive,
			Base64Data:    r.Base64Data,
		})
	}
	return out
}

// ToEntities converts client regions for the use case
func ToEntities(inputs []RegionInput) []entity.Region {
	regions := make([]entity.Region, 0, len(inputs))
	for _, in := range inputs {
		regions = append(regions, entity.Region{
			ID:            in.ID,
			Box:           entity.BoundingBox(in.Box),
			Order:         in.Order,
			Description:   in.Description,
			ExtractedText: in.ExtractedText,
			IsActive:      in.IsActive != nil && *in.IsActive,
		})
	}
	return regions
}

// NewProcessingLogListResponse maps a slice of processing log entries
func NewProcessingLogListResponse(userID string, logs []*entity.ProcessingLog) ProcessingLogListResponse {
	out := ProcessingLogListResponse{
		UserID: userID,
		Logs:   make([]ProcessingLogResponse, 0, len(logs)),
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, ProcessingLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Operation: string(l.Operation),
			Status:    string(l.Status),
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}
