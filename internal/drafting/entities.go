// Package drafting provides the 2D drawing document model consumed by the
// templates and the compliance validators.
package drafting

// Dimension entity defaults, applied when no per-entity override is set.
// Values follow the AS 1100.101 drafting conventions the generator targets.
const (
	DefaultDimTextHeight    = 3.5  // mm
	DefaultDimArrowSize     = 0.75 // mm, 3x the 0.25mm dimension line width
	DefaultDimDecimalPlaces = 2
)

// Entity is a drawable document entity identified by its DXF type name.
type Entity interface {
	DXFType() string
	LayerName() string
}

// Inserter is implemented by annotation entities that carry an insertion
// point, used for region queries.
type Inserter interface {
	InsertionPoint() Point
}

// Polyline is a lightweight polyline on a layer.
type Polyline struct {
	Layer  string
	Points []Point
	Closed bool
}

// DXFType implements Entity.
func (p *Polyline) DXFType() string { return "LWPOLYLINE" }

// LayerName implements Entity.
func (p *Polyline) LayerName() string { return p.Layer }

// Line is a single line segment.
type Line struct {
	Layer      string
	Start, End Point
}

// DXFType implements Entity.
func (l *Line) DXFType() string { return "LINE" }

// LayerName implements Entity.
func (l *Line) LayerName() string { return l.Layer }

// Circle is a full circle.
type Circle struct {
	Layer  string
	Center Point
	Radius float64
}

// DXFType implements Entity.
func (c *Circle) DXFType() string { return "CIRCLE" }

// LayerName implements Entity.
func (c *Circle) LayerName() string { return c.Layer }

// Text is a single-line text entity.
type Text struct {
	Layer  string
	Value  string
	Insert Point
	Height float64
}

// DXFType implements Entity.
func (t *Text) DXFType() string { return "TEXT" }

// LayerName implements Entity.
func (t *Text) LayerName() string { return t.Layer }

// InsertionPoint implements Inserter.
func (t *Text) InsertionPoint() Point { return t.Insert }

// MText is a multi-line text entity.
type MText struct {
	Layer  string
	Value  string
	Insert Point
	Height float64
}

// DXFType implements Entity.
func (t *MText) DXFType() string { return "MTEXT" }

// LayerName implements Entity.
func (t *MText) LayerName() string { return t.Layer }

// InsertionPoint implements Inserter.
func (t *MText) InsertionPoint() Point { return t.Insert }

// LinearDimension is a linear dimension between two measure points, with the
// dimension line anchored at Base. Angle is in degrees; 90 produces a
// vertical dimension. Style properties are optional per-entity overrides:
// a nil override means "use the documented default".
type LinearDimension struct {
	Layer  string
	Base   Point
	P1, P2 Point
	Angle  float64
	Style  string

	TextHeightOverride    *float64
	ArrowSizeOverride     *float64
	DecimalPlacesOverride *int
}

// DXFType implements Entity.
func (d *LinearDimension) DXFType() string { return "DIMENSION" }

// LayerName implements Entity.
func (d *LinearDimension) LayerName() string { return d.Layer }

// TextHeight returns the effective dimension text height: the override if
// set, else DefaultDimTextHeight.
func (d *LinearDimension) TextHeight() float64 {
	if d.TextHeightOverride != nil {
		return *d.TextHeightOverride
	}
	return DefaultDimTextHeight
}

// ArrowSize returns the effective arrowhead size: the override if set, else
// DefaultDimArrowSize.
func (d *LinearDimension) ArrowSize() float64 {
	if d.ArrowSizeOverride != nil {
		return *d.ArrowSizeOverride
	}
	return DefaultDimArrowSize
}

// DecimalPlaces returns the effective decimal precision of the measurement
// text: the override if set, else DefaultDimDecimalPlaces.
func (d *LinearDimension) DecimalPlaces() int {
	if d.DecimalPlacesOverride != nil {
		return *d.DecimalPlacesOverride
	}
	return DefaultDimDecimalPlaces
}
