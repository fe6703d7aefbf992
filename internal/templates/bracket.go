// Package templates provides parametric CAD templates that turn a validated
// parameter set into a 3D solid and a matching AS 1100 style 2D drawing.
package templates

import (
	"fmt"
	"strings"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/kernel"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// Sheet layout constants for the generated drawing: A4 landscape with
// AS 1100.101 borders (20mm binding edge, 10mm elsewhere) and a 170x50mm
// title block in the bottom-right corner.
const (
	sheetWidth  = 297.0
	sheetHeight = 210.0

	borderLeft   = 20.0
	borderOthers = 10.0

	titleBlockWidth  = 170.0
	titleBlockHeight = 50.0

	// View anchors. The front view sits left of the side view; both are
	// placed clear of the title block region.
	frontViewX = 50.0
	frontViewY = 150.0
	sideViewX  = 200.0
	sideViewY  = 150.0
)

// Drawing layer names shared between generation and validation.
const (
	LayerOutline    = "OUTLINE"
	LayerHidden     = "HIDDEN"
	LayerDimensions = "DIMENSIONS"
	LayerText       = "TEXT"
)

// MountingBracket is the parametric mounting bracket template. It generates
// L-brackets (two coplanar plates sharing the base plane, each with its own
// hole row) and flat brackets (single plate, centreline holes).
type MountingBracket struct{}

// NewMountingBracket returns the mounting bracket template.
func NewMountingBracket() *MountingBracket {
	return &MountingBracket{}
}

// Name implements Template.
func (t *MountingBracket) Name() string { return "mounting_bracket" }

// Generate3D builds the bracket solid. Kernel failures propagate unmodified.
func (t *MountingBracket) Generate3D(params *types.BracketParams) (*kernel.Solid, error) {
	if params.IsL() {
		return t.generateL(params)
	}
	return t.generateFlat(params)
}

// generateL builds the L-bracket: two width x height plates extruded by
// thickness from the same base sketch plane, so the result is a single plate
// footprint carrying two independent hole rows (at y = +h/2 and y = -h/2).
// This reproduces the established template behavior; a true right-angle bend
// is a deliberate non-change here.
func (t *MountingBracket) generateL(params *types.BracketParams) (*kernel.Solid, error) {
	b := kernel.NewBuilder()

	// Vertical plate.
	if err := b.ExtrudeRect(0, 0, params.Width, params.Height, params.Thickness); err != nil {
		return nil, err
	}
	// Horizontal plate, sketched on the same plane.
	if err := b.ExtrudeRect(0, 0, params.Width, params.Height, params.Thickness); err != nil {
		return nil, err
	}

	if err := t.cutHoleRow(b, params, params.Height/2); err != nil {
		return nil, err
	}
	if err := t.cutHoleRow(b, params, -params.Height/2); err != nil {
		return nil, err
	}

	return b.Solid()
}

// generateFlat builds the flat bracket: one plate with holes along the
// centreline.
func (t *MountingBracket) generateFlat(params *types.BracketParams) (*kernel.Solid, error) {
	b := kernel.NewBuilder()

	if err := b.ExtrudeRect(0, 0, params.Width, params.Height, params.Thickness); err != nil {
		return nil, err
	}
	if err := t.cutHoleRow(b, params, 0); err != nil {
		return nil, err
	}

	return b.Solid()
}

// cutHoleRow cuts hole_count evenly spaced through-holes along the width at
// the given y position: spacing = w/(n+1), x = -w/2 + i*spacing.
func (t *MountingBracket) cutHoleRow(b *kernel.Builder, params *types.BracketParams, y float64) error {
	spacing := params.HoleSpacing()
	for i := 1; i <= params.HoleCount; i++ {
		x := -params.Width/2 + float64(i)*spacing
		if err := b.CutHole(x, y, params.HoleDiameter/2); err != nil {
			return err
		}
	}
	return nil
}

// Generate2D builds the AS 1100 style drawing: front and side views,
// linear dimensions, a diameter callout, the sheet border, and the title
// block. The result is deterministic for identical parameters.
func (t *MountingBracket) Generate2D(params *types.BracketParams) (*drafting.Document, error) {
	doc := drafting.NewDocument()
	doc.SetLimits(drafting.Point{X: 0, Y: 0}, drafting.Point{X: sheetWidth, Y: sheetHeight})

	// AS 1100.101 line conventions: visible outlines solid, hidden detail
	// dashed, dimensions on their own layer.
	for _, layer := range []drafting.Layer{
		{Name: LayerOutline, Color: 7, Linetype: "CONTINUOUS"},
		{Name: LayerHidden, Color: 8, Linetype: "DASHED"},
		{Name: LayerDimensions, Color: 3, Linetype: "CONTINUOUS"},
		{Name: LayerText, Color: 7, Linetype: "CONTINUOUS"},
	} {
		if err := doc.AddLayer(layer.Name, layer.Color, layer.Linetype); err != nil {
			return nil, err
		}
	}

	t.drawBorder(doc)
	t.drawFrontView(doc, params)
	t.drawSideView(doc, params)
	t.drawDimensions(doc, params)
	t.drawTitleBlock(doc, params)

	return doc, nil
}

// drawBorder draws the sheet border frame: 20mm binding edge on the left,
// 10mm on the remaining sides.
func (t *MountingBracket) drawBorder(doc *drafting.Document) {
	doc.Add(&drafting.Polyline{
		Layer:  LayerOutline,
		Closed: true,
		Points: []drafting.Point{
			{X: borderLeft, Y: borderOthers},
			{X: sheetWidth - borderOthers, Y: borderOthers},
			{X: sheetWidth - borderOthers, Y: sheetHeight - borderOthers},
			{X: borderLeft, Y: sheetHeight - borderOthers},
		},
	})
}

// drawFrontView draws the width x height outline with the mounting hole
// circles across the upper hole row.
func (t *MountingBracket) drawFrontView(doc *drafting.Document, params *types.BracketParams) {
	doc.Add(rectOutline(frontViewX, frontViewY, params.Width, params.Height))

	spacing := params.HoleSpacing()
	for i := 1; i <= params.HoleCount; i++ {
		doc.Add(&drafting.Circle{
			Layer:  LayerOutline,
			Center: drafting.Point{X: frontViewX + float64(i)*spacing, Y: frontViewY + params.Height/2},
			Radius: params.HoleDiameter / 2,
		})
	}
}

// drawSideView draws the thickness x height outline showing the material
// section.
func (t *MountingBracket) drawSideView(doc *drafting.Document, params *types.BracketParams) {
	doc.Add(rectOutline(sideViewX, sideViewY, params.Thickness, params.Height))
}

// drawDimensions adds the overall width and height dimensions plus the hole
// diameter callout at the first hole.
func (t *MountingBracket) drawDimensions(doc *drafting.Document, params *types.BracketParams) {
	x0, y0 := frontViewX, frontViewY
	w, h := params.Width, params.Height

	// Width dimension above the front view.
	doc.Add(&drafting.LinearDimension{
		Layer: LayerDimensions,
		Style: "AS1100",
		Base:  drafting.Point{X: x0 + w/2, Y: y0 + h + 10},
		P1:    drafting.Point{X: x0, Y: y0 + h + 5},
		P2:    drafting.Point{X: x0 + w, Y: y0 + h + 5},
	})

	// Height dimension right of the front view.
	doc.Add(&drafting.LinearDimension{
		Layer: LayerDimensions,
		Style: "AS1100",
		Base:  drafting.Point{X: x0 + w + 10, Y: y0 + h/2},
		P1:    drafting.Point{X: x0 + w + 5, Y: y0},
		P2:    drafting.Point{X: x0 + w + 5, Y: y0 + h},
		Angle: 90,
	})

	// Hole diameter callout next to the first hole.
	doc.Add(&drafting.Text{
		Layer:  LayerText,
		Value:  fmt.Sprintf("Ø%g", params.HoleDiameter),
		Insert: drafting.Point{X: x0 + params.HoleSpacing() + 10, Y: y0 + h/2},
		Height: drafting.DefaultDimTextHeight,
	})
}

// drawTitleBlock draws the 170x50mm title block anchored to the bottom-right
// of the sheet with exactly four text lines: type header, material, overall
// dimensions, and hole specification.
func (t *MountingBracket) drawTitleBlock(doc *drafting.Document, params *types.BracketParams) {
	x0 := sheetWidth - titleBlockWidth - borderOthers
	y0 := borderOthers

	doc.Add(rectOutline(x0, y0, titleBlockWidth, titleBlockHeight))

	doc.Add(&drafting.Text{
		Layer:  LayerText,
		Value:  fmt.Sprintf("MOUNTING BRACKET - %s", strings.ToUpper(params.BracketType)),
		Insert: drafting.Point{X: x0 + 5, Y: y0 + 35},
		Height: 5,
	})
	doc.Add(&drafting.Text{
		Layer:  LayerText,
		Value:  fmt.Sprintf("MATERIAL: %s", params.Material),
		Insert: drafting.Point{X: x0 + 5, Y: y0 + 25},
		Height: 3.5,
	})
	doc.Add(&drafting.Text{
		Layer:  LayerText,
		Value:  fmt.Sprintf("%gx%gx%gmm", params.Width, params.Height, params.Thickness),
		Insert: drafting.Point{X: x0 + 5, Y: y0 + 15},
		Height: 3.5,
	})
	doc.Add(&drafting.Text{
		Layer:  LayerText,
		Value:  fmt.Sprintf("%dx Ø%gmm HOLES", params.HoleCount, params.HoleDiameter),
		Insert: drafting.Point{X: x0 + 5, Y: y0 + 5},
		Height: 3.5,
	})
}

// rectOutline builds a closed rectangle polyline with its lower-left corner
// at (x0, y0).
func rectOutline(x0, y0, w, h float64) *drafting.Polyline {
	return &drafting.Polyline{
		Layer:  LayerOutline,
		Closed: true,
		Points: []drafting.Point{
			{X: x0, Y: y0},
			{X: x0 + w, Y: y0},
			{X: x0 + w, Y: y0 + h},
			{X: x0, Y: y0 + h},
		},
	}
}
