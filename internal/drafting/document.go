// Package drafting provides the 2D drawing document model consumed by the
// templates and the compliance validators: named layers, geometric and
// annotation entities, drawing-limits metadata, and DXF serialization.
package drafting

import (
	"fmt"

	"github.com/google/uuid"
)

// Point is a 2D coordinate in drawing units (millimetres).
type Point struct {
	X, Y float64
}

// Layer is a named drawing layer with an ACI color index and a linetype name.
type Layer struct {
	Name     string
	Color    int
	Linetype string
}

// Limits is the declared sheet extent of the drawing ($LIMMIN/$LIMMAX).
type Limits struct {
	Min, Max Point
}

// Width returns the declared sheet width.
func (l Limits) Width() float64 {
	return abs(l.Max.X - l.Min.X)
}

// Height returns the declared sheet height.
func (l Limits) Height() float64 {
	return abs(l.Max.Y - l.Min.Y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Document is a 2D drafting document. It is created fresh per generation
// call and is never mutated after being handed to export or validation.
type Document struct {
	// Fingerprint uniquely identifies this document instance; it is written
	// to the DXF header as $FINGERPRINTGUID.
	Fingerprint uuid.UUID

	layers   []Layer
	entities []Entity
	limits   *Limits
}

// NewDocument returns an empty document with a fresh fingerprint.
func NewDocument() *Document {
	return &Document{Fingerprint: uuid.New()}
}

// AddLayer registers a named layer. Layer names must be unique.
func (d *Document) AddLayer(name string, color int, linetype string) error {
	if name == "" {
		return fmt.Errorf("layer name cannot be empty")
	}
	for _, l := range d.layers {
		if l.Name == name {
			return fmt.Errorf("layer %q already exists", name)
		}
	}
	d.layers = append(d.layers, Layer{Name: name, Color: color, Linetype: linetype})
	return nil
}

// Layers returns the registered layers in registration order.
func (d *Document) Layers() []Layer {
	return d.layers
}

// HasLayer reports whether a layer with the given name is registered.
func (d *Document) HasLayer(name string) bool {
	for _, l := range d.layers {
		if l.Name == name {
			return true
		}
	}
	return false
}

// Add appends an entity to the document.
func (d *Document) Add(e Entity) {
	d.entities = append(d.entities, e)
}

// Entities returns all entities in insertion order.
func (d *Document) Entities() []Entity {
	return d.entities
}

// SetLimits declares the sheet extents of the drawing.
func (d *Document) SetLimits(min, max Point) {
	d.limits = &Limits{Min: min, Max: max}
}

// Limits returns the declared sheet extents, if any were set.
func (d *Document) Limits() (Limits, bool) {
	if d.limits == nil {
		return Limits{}, false
	}
	return *d.limits, true
}

// Query returns all entities whose DXF type name matches one of the given
// types, in insertion order. Type names follow DXF conventions, e.g.
// "LWPOLYLINE", "LINE", "CIRCLE", "TEXT", "MTEXT", "DIMENSION".
func (d *Document) Query(dxfTypes ...string) []Entity {
	var out []Entity
	for _, e := range d.entities {
		for _, t := range dxfTypes {
			if e.DXFType() == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
