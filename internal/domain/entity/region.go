package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Normalized coordinate range used by the vision model
const (
	CoordinateMin = 0.0
	CoordinateMax = 1000.0
)

// UntitledRegion is the description given to regions the model left unnamed
const UntitledRegion = "Untitled"

// BoundingBox is a rectangle in normalized 0-1000 coordinates
type BoundingBox struct {
	YMin float64 `json:"ymin"`
	XMin float64 `json:"xmin"`
	YMax float64 `json:"ymax"`
	XMax float64 `json:"xmax"`
}

// Region is a rectangular block of text with its processing order
type Region struct {
	ID            string      `json:"id"`
	Box           BoundingBox `json:"box"`
	Order         int         `json:"order"`
	Description   string      `json:"description"`
	ExtractedText *string     `json:"extractedText,omitempty"`
	IsActive      bool        `json:"isActive"`
	Base64Data    string      `json:"base64Data,omitempty"`
}

// RawRegion is one descriptor as returned by the vision model.
// Every field is optional in the reply.
type RawRegion struct {
	Description *string  `json:"description"`
	YMin        *float64 `json:"ymin"`
	XMin        *float64 `json:"xmin"`
	YMax        *float64 `json:"ymax"`
	XMax        *float64 `json:"xmax"`
}

// RegionIDFunc produces the identifier for the region at a zero-based index
type RegionIDFunc func(index int) string

// ShapeRegions turns raw descriptors into regions, keeping input order.
// Orders are 1..N and every region starts active.
func ShapeRegions(raw []RawRegion, newID RegionIDFunc) []Region {
	regions := make([]Region, 0, len(raw))
	for idx, r := range raw {
		description := UntitledRegion
		if r.Description != nil && strings.TrimSpace(*r.Description) != "" {
			description = *r.Description
		}

		regions = append(regions, Region{
			ID: newID(idx),
			Box: BoundingBox{
				YMin: coordinate(r.YMin, CoordinateMin),
				XMin: coordinate(r.XMin, CoordinateMin),
				YMax: coordinate(r.YMax, CoordinateMax),
				XMax: coordinate(r.XMax, CoordinateMax),
			},
			Order:       idx + 1,
			Description: description,
			IsActive:    true,
		})
	}
	return regions
}

// ActiveRegionsInOrder drops inactive regions and sorts the rest by order.
// Regions sharing an order keep their relative position.
func ActiveRegionsInOrder(regions []Region) []Region {
	active := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}

// String renders the region the way extraction instructions list it
func (r Region) String() string {
	return fmt.Sprintf("Region %d: coordinates [%s, %s, %s, %s] - %s",
		r.Order,
		formatCoordinate(r.Box.YMin),
		formatCoordinate(r.Box.XMin),
		formatCoordinate(r.Box.YMax),
		formatCoordinate(r.Box.XMax),
		r.Description,
	)
}

func coordinate(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return ClampCoordinate(*v)
}

// ClampCoordinate forces a value into the normalized coordinate range
func ClampCoordinate(v float64) float64 {
	switch {
	case v < CoordinateMin:
		return CoordinateMin
	case v > CoordinateMax:
		return CoordinateMax
	default:
		return v
	}
}

func formatCoordinate(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
