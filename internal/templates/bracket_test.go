package templates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

func lBracketParams(t *testing.T) *types.BracketParams {
	t.Helper()
	params, err := types.NewBracketParams(100, 80, 5, 8, 4, "Steel", "L")
	require.NoError(t, err)
	return params
}

func flatBracketParams(t *testing.T) *types.BracketParams {
	t.Helper()
	params, err := types.NewBracketParams(120, 60, 3, 6, 6, "Aluminium", "flat")
	require.NoError(t, err)
	return params
}

func TestGenerate3D_LBracketVolume(t *testing.T) {
	solid, err := NewMountingBracket().Generate3D(lBracketParams(t))
	require.NoError(t, err)

	// Coplanar double plate collapses to a single 100x80 footprint; each of
	// the 8 edge-centred holes removes half a disc.
	expected := (100*80 - 8*math.Pi*16/2) * 5
	assert.InDelta(t, expected, solid.Volume(), 1e-6)
}

func TestGenerate3D_FlatBracketVolume(t *testing.T) {
	solid, err := NewMountingBracket().Generate3D(flatBracketParams(t))
	require.NoError(t, err)

	expected := (120*60 - 6*math.Pi*9) * 3
	assert.InDelta(t, expected, solid.Volume(), 1e-6)
}

func TestGenerate3D_VolumeAlwaysPositive(t *testing.T) {
	tmpl := NewMountingBracket()
	for _, bt := range []string{"L", "flat"} {
		for holeCount := 1; holeCount <= 10; holeCount++ {
			params, err := types.NewBracketParams(100, 80, 5, 8, holeCount, "", bt)
			require.NoError(t, err)

			solid, err := tmpl.Generate3D(params)
			require.NoError(t, err)
			assert.Greater(t, solid.Volume(), 0.0, "%s bracket with %d holes", bt, holeCount)
		}
	}
}

func TestGenerate3D_VolumeMonotonic(t *testing.T) {
	tmpl := NewMountingBracket()

	base, err := tmpl.Generate3D(lBracketParams(t))
	require.NoError(t, err)

	widerParams, err := types.NewBracketParams(200, 80, 5, 8, 4, "Steel", "L")
	require.NoError(t, err)
	wider, err := tmpl.Generate3D(widerParams)
	require.NoError(t, err)

	thickerParams, err := types.NewBracketParams(100, 80, 10, 8, 4, "Steel", "L")
	require.NoError(t, err)
	thicker, err := tmpl.Generate3D(thickerParams)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, wider.Volume(), base.Volume())
	assert.GreaterOrEqual(t, thicker.Volume(), base.Volume())
}

func TestGenerate2D_Layers(t *testing.T) {
	doc, err := NewMountingBracket().Generate2D(lBracketParams(t))
	require.NoError(t, err)

	layers := doc.Layers()
	require.Len(t, layers, 4)

	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Name
	}
	assert.Equal(t, []string{"OUTLINE", "HIDDEN", "DIMENSIONS", "TEXT"}, names)

	assert.Equal(t, drafting.Layer{Name: "OUTLINE", Color: 7, Linetype: "CONTINUOUS"}, layers[0])
	assert.Equal(t, drafting.Layer{Name: "HIDDEN", Color: 8, Linetype: "DASHED"}, layers[1])
	assert.Equal(t, drafting.Layer{Name: "DIMENSIONS", Color: 3, Linetype: "CONTINUOUS"}, layers[2])
	assert.Equal(t, drafting.Layer{Name: "TEXT", Color: 7, Linetype: "CONTINUOUS"}, layers[3])
}

func TestGenerate2D_Limits(t *testing.T) {
	doc, err := NewMountingBracket().Generate2D(lBracketParams(t))
	require.NoError(t, err)

	limits, ok := doc.Limits()
	require.True(t, ok)
	assert.Equal(t, 297.0, limits.Width())
	assert.Equal(t, 210.0, limits.Height())
}

func TestGenerate2D_EntityCounts(t *testing.T) {
	params := lBracketParams(t)
	doc, err := NewMountingBracket().Generate2D(params)
	require.NoError(t, err)

	// Border, front view, side view, title block.
	assert.Len(t, doc.Query("LWPOLYLINE"), 4)
	// One circle per mounting hole in the front view.
	assert.Len(t, doc.Query("CIRCLE"), params.HoleCount)
	// Width and height dimensions.
	assert.Len(t, doc.Query("DIMENSION"), 2)
	// Diameter callout plus the four title block lines.
	assert.Len(t, doc.Query("TEXT"), 5)
}

func TestGenerate2D_HoleCircles(t *testing.T) {
	params := flatBracketParams(t)
	doc, err := NewMountingBracket().Generate2D(params)
	require.NoError(t, err)

	spacing := params.HoleSpacing()
	circles := doc.Query("CIRCLE")
	require.Len(t, circles, params.HoleCount)

	for i, e := range circles {
		circle := e.(*drafting.Circle)
		assert.InDelta(t, 50+float64(i+1)*spacing, circle.Center.X, 1e-9)
		assert.InDelta(t, 150+params.Height/2, circle.Center.Y, 1e-9)
		assert.InDelta(t, params.HoleDiameter/2, circle.Radius, 1e-9)
	}
}

func TestGenerate2D_TitleBlockTexts(t *testing.T) {
	doc, err := NewMountingBracket().Generate2D(lBracketParams(t))
	require.NoError(t, err)

	// Texts whose insertion point lies inside the 170x50 title block.
	var inside []*drafting.Text
	for _, e := range doc.Query("TEXT") {
		text := e.(*drafting.Text)
		p := text.InsertionPoint()
		if p.X >= 117 && p.X <= 287 && p.Y >= 10 && p.Y <= 60 {
			inside = append(inside, text)
		}
	}
	require.Len(t, inside, 4)

	assert.Equal(t, "MOUNTING BRACKET - L", inside[0].Value)
	assert.Equal(t, 5.0, inside[0].Height)
	assert.Equal(t, "MATERIAL: Steel", inside[1].Value)
	assert.Equal(t, "100x80x5mm", inside[2].Value)
	assert.Equal(t, "4x Ø8mm HOLES", inside[3].Value)
}

func TestGenerate2D_DiameterCallout(t *testing.T) {
	params := lBracketParams(t)
	doc, err := NewMountingBracket().Generate2D(params)
	require.NoError(t, err)

	texts := doc.Query("TEXT")
	callout := texts[0].(*drafting.Text)
	assert.Equal(t, "Ø8", callout.Value)
	assert.InDelta(t, 50+params.HoleSpacing()+10, callout.Insert.X, 1e-9)
	assert.InDelta(t, 150+params.Height/2, callout.Insert.Y, 1e-9)
	assert.Equal(t, 3.5, callout.Height)
}

func TestGenerate2D_Dimensions(t *testing.T) {
	doc, err := NewMountingBracket().Generate2D(lBracketParams(t))
	require.NoError(t, err)

	dims := doc.Query("DIMENSION")
	require.Len(t, dims, 2)

	width := dims[0].(*drafting.LinearDimension)
	assert.Equal(t, 0.0, width.Angle)
	assert.Equal(t, drafting.Point{X: 50, Y: 235}, width.P1)
	assert.Equal(t, drafting.Point{X: 150, Y: 235}, width.P2)

	height := dims[1].(*drafting.LinearDimension)
	assert.Equal(t, 90.0, height.Angle)
	assert.Equal(t, drafting.Point{X: 155, Y: 150}, height.P1)
	assert.Equal(t, drafting.Point{X: 155, Y: 230}, height.P2)

	// Generated dimensions carry no overrides, so the documented defaults
	// apply.
	assert.Equal(t, 3.5, width.TextHeight())
	assert.Equal(t, 0.75, width.ArrowSize())
	assert.Equal(t, 2, width.DecimalPlaces())
}

func TestGenerate2D_Deterministic(t *testing.T) {
	tmpl := NewMountingBracket()
	params := lBracketParams(t)

	first, err := tmpl.Generate2D(params)
	require.NoError(t, err)
	second, err := tmpl.Generate2D(params)
	require.NoError(t, err)

	require.Equal(t, len(first.Entities()), len(second.Entities()))
	for i, e := range first.Entities() {
		assert.Equal(t, e, second.Entities()[i])
	}
}
