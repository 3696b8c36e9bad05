package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fixedID(index int) string {
	return fmt.Sprintf("region_%d_1700000000000", index)
}

func TestShapeRegions(t *testing.T) {
	t.Run("orders follow input order and all regions are active", func(t *testing.T) {
		raw := []RawRegion{
			{Description: ptr("Header"), YMin: ptr(10.0), XMin: ptr(20.0), YMax: ptr(100.0), XMax: ptr(900.0)},
			{Description: ptr("Body"), YMin: ptr(120.0), XMin: ptr(20.0), YMax: ptr(800.0), XMax: ptr(900.0)},
			{Description: ptr("Footer"), YMin: ptr(850.0), XMin: ptr(20.0), YMax: ptr(950.0), XMax: ptr(900.0)},
		}

		regions := ShapeRegions(raw, fixedID)

		require.Len(t, regions, 3)
		for i, r := range regions {
			assert.Equal(t, i+1, r.Order)
			assert.True(t, r.IsActive)
			assert.Equal(t, fixedID(i), r.ID)
			assert.Nil(t, r.ExtractedText)
		}
		assert.Equal(t, "Header", regions[0].Description)
		assert.Equal(t, BoundingBox{YMin: 120, XMin: 20, YMax: 800, XMax: 900}, regions[1].Box)
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		regions := ShapeRegions([]RawRegion{{}}, fixedID)

		require.Len(t, regions, 1)
		assert.Equal(t, UntitledRegion, regions[0].Description)
		assert.Equal(t, BoundingBox{YMin: 0, XMin: 0, YMax: 1000, XMax: 1000}, regions[0].Box)
	})

	t.Run("coordinates are clamped", func(t *testing.T) {
		regions := ShapeRegions([]RawRegion{{YMin: ptr(-5.0), XMin: ptr(10.0), YMax: ptr(1200.0), XMax: ptr(999.5)}}, fixedID)

		assert.Equal(t, BoundingBox{YMin: 0, XMin: 10, YMax: 1000, XMax: 999.5}, regions[0].Box)
	})

	t.Run("empty input", func(t *testing.T) {
		regions := ShapeRegions(nil, fixedID)

		assert.NotNil(t, regions)
		assert.Empty(t, regions)
	})
}

func TestActiveRegionsInOrder(t *testing.T) {
	regions := []Region{
		{ID: "b", Order: 2, IsActive: true},
		{ID: "a", Order: 1, IsActive: true},
		{ID: "c", Order: 3, IsActive: false},
	}

	active := ActiveRegionsInOrder(regions)

	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
	assert.Equal(t, "b", regions[0].ID, "input slice must not be reordered")
}

func TestRegion_String(t *testing.T) {
	r := Region{
		Order:       1,
		Description: "Title",
		Box:         BoundingBox{YMin: 0, XMin: 12.5, YMax: 100, XMax: 1000},
	}

	assert.Equal(t, "Region 1: coordinates [0, 12.5, 100, 1000] - Title", r.String())
}
