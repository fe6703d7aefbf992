package drafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AddLayer(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddLayer("OUTLINE", 7, "CONTINUOUS"))
	require.NoError(t, doc.AddLayer("HIDDEN", 8, "DASHED"))

	assert.Len(t, doc.Layers(), 2)
	assert.True(t, doc.HasLayer("OUTLINE"))
	assert.False(t, doc.HasLayer("DIMENSIONS"))
}

func TestDocument_AddLayerRejectsDuplicates(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.AddLayer("OUTLINE", 7, "CONTINUOUS"))
	assert.Error(t, doc.AddLayer("OUTLINE", 3, "DASHED"))
}

func TestDocument_AddLayerRejectsEmptyName(t *testing.T) {
	doc := NewDocument()
	assert.Error(t, doc.AddLayer("", 7, "CONTINUOUS"))
}

func TestDocument_Limits(t *testing.T) {
	doc := NewDocument()
	_, ok := doc.Limits()
	assert.False(t, ok, "fresh document has no limits")

	doc.SetLimits(Point{0, 0}, Point{297, 210})
	limits, ok := doc.Limits()
	require.True(t, ok)
	assert.Equal(t, 297.0, limits.Width())
	assert.Equal(t, 210.0, limits.Height())
}

func TestDocument_Query(t *testing.T) {
	doc := NewDocument()
	doc.Add(&Polyline{Layer: "OUTLINE", Points: []Point{{0, 0}, {10, 0}}})
	doc.Add(&Line{Layer: "OUTLINE", Start: Point{0, 0}, End: Point{10, 10}})
	doc.Add(&Circle{Layer: "OUTLINE", Center: Point{5, 5}, Radius: 2})
	doc.Add(&Text{Layer: "TEXT", Value: "Ø8", Insert: Point{1, 1}, Height: 3.5})
	doc.Add(&LinearDimension{Layer: "DIMENSIONS"})

	assert.Len(t, doc.Query("LWPOLYLINE", "LINE"), 2)
	assert.Len(t, doc.Query("TEXT", "MTEXT"), 1)
	assert.Len(t, doc.Query("DIMENSION"), 1)
	assert.Empty(t, doc.Query("ARC"))
	assert.Len(t, doc.Entities(), 5)
}

func TestDocument_FingerprintsDiffer(t *testing.T) {
	assert.NotEqual(t, NewDocument().Fingerprint, NewDocument().Fingerprint)
}

func TestLinearDimension_Defaults(t *testing.T) {
	dim := &LinearDimension{}
	assert.Equal(t, 3.5, dim.TextHeight())
	assert.Equal(t, 0.75, dim.ArrowSize())
	assert.Equal(t, 2, dim.DecimalPlaces())
}

func TestLinearDimension_Overrides(t *testing.T) {
	height := 2.0
	arrow := 1.5
	decimals := 3
	dim := &LinearDimension{
		TextHeightOverride:    &height,
		ArrowSizeOverride:     &arrow,
		DecimalPlacesOverride: &decimals,
	}

	assert.Equal(t, 2.0, dim.TextHeight())
	assert.Equal(t, 1.5, dim.ArrowSize())
	assert.Equal(t, 3, dim.DecimalPlaces())
}

func TestInserterImplementations(t *testing.T) {
	var _ Inserter = &Text{}
	var _ Inserter = &MText{}

	text := &Text{Insert: Point{200, 30}}
	assert.Equal(t, Point{200, 30}, text.InsertionPoint())
}
