// Package kernel provides the sketch-extrude-subtract solid modeling backend
// used by the parametric templates. Solids are built from axis-aligned
// rectangular extrusions sharing the XY base plane, with circular through-cuts.
package kernel

import "fmt"

// Error represents a solid construction failure reported by the kernel.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("kernel: %s: %s", e.Op, e.Message)
}

// Vec3 is a point in model space (millimetres).
type Vec3 struct {
	X, Y, Z float64
}

// slab is a rectangular extrusion: a w×h rectangle centred at (cx, cy) on the
// XY plane, extruded from z0 to z1.
type slab struct {
	cx, cy float64
	w, h   float64
	z0, z1 float64
}

func (s slab) x0() float64 { return s.cx - s.w/2 }
func (s slab) x1() float64 { return s.cx + s.w/2 }
func (s slab) y0() float64 { return s.cy - s.h/2 }
func (s slab) y1() float64 { return s.cy + s.h/2 }

// bore is a circular through-cut at (cx, cy) with the given radius. It removes
// material from every slab it intersects, across the full part height.
type bore struct {
	cx, cy float64
	r      float64
}

// Builder constructs a Solid through a sequence of modeling operations.
// Operations fail fast on degenerate input; a failed builder cannot produce
// a solid.
type Builder struct {
	slabs []slab
	bores []bore
	err   error
}

// NewBuilder returns an empty part builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ExtrudeRect sketches a w×h rectangle centred at (cx, cy) on the base plane
// and extrudes it upward by thickness, unioning it with the part built so far.
func (b *Builder) ExtrudeRect(cx, cy, w, h, thickness float64) error {
	if b.err != nil {
		return b.err
	}
	if w <= 0 || h <= 0 {
		b.err = &Error{Op: "extrude", Message: fmt.Sprintf("degenerate rectangle %gx%g", w, h)}
		return b.err
	}
	if thickness <= 0 {
		b.err = &Error{Op: "extrude", Message: fmt.Sprintf("non-positive extrusion amount %g", thickness)}
		return b.err
	}
	b.slabs = append(b.slabs, slab{cx: cx, cy: cy, w: w, h: h, z0: 0, z1: thickness})
	return nil
}

// CutHole subtracts a circular through-cut of the given radius at (cx, cy).
// The cut passes through the full height of the part.
func (b *Builder) CutHole(cx, cy, radius float64) error {
	if b.err != nil {
		return b.err
	}
	if radius <= 0 {
		b.err = &Error{Op: "cut", Message: fmt.Sprintf("non-positive hole radius %g", radius)}
		return b.err
	}
	if len(b.slabs) == 0 {
		b.err = &Error{Op: "cut", Message: "cannot cut a hole in an empty part"}
		return b.err
	}
	b.bores = append(b.bores, bore{cx: cx, cy: cy, r: radius})
	return nil
}

// Solid finalizes the build and returns the resulting solid. Coincident
// duplicate extrusions collapse into one; the bores are kept as built.
func (b *Builder) Solid() (*Solid, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.slabs) == 0 {
		return nil, &Error{Op: "solid", Message: "empty part"}
	}
	var slabs []slab
	for _, s := range b.slabs {
		dup := false
		for _, kept := range slabs {
			if s == kept {
				dup = true
				break
			}
		}
		if !dup {
			slabs = append(slabs, s)
		}
	}
	return &Solid{slabs: slabs, bores: b.bores}, nil
}

// Solid is an immutable boundary-representation of an extruded plate part.
type Solid struct {
	slabs []slab
	bores []bore
}

// Volume returns the exact material volume in cubic millimetres: the union of
// the extrusions minus the bore material actually inside that union. Bores
// are assumed not to overlap each other; overlapping bores are subtracted
// twice, matching the non-validated builder contract.
func (s *Solid) Volume() float64 {
	breaks := zBreakpoints(s.slabs)
	var total float64
	for i := 0; i+1 < len(breaks); i++ {
		za, zb := breaks[i], breaks[i+1]
		var active []slab
		for _, sl := range s.slabs {
			if sl.z0 <= za && sl.z1 >= zb {
				active = append(active, sl)
			}
		}
		if len(active) == 0 {
			continue
		}
		area := unionRectArea(active)
		for _, bo := range s.bores {
			area -= circleUnionArea(bo, active)
		}
		if area > 0 {
			total += area * (zb - za)
		}
	}
	return total
}

// BoundingBox returns the axis-aligned bounds of the solid.
func (s *Solid) BoundingBox() (min, max Vec3) {
	first := s.slabs[0]
	min = Vec3{X: first.x0(), Y: first.y0(), Z: first.z0}
	max = Vec3{X: first.x1(), Y: first.y1(), Z: first.z1}
	for _, sl := range s.slabs[1:] {
		min.X = minf(min.X, sl.x0())
		min.Y = minf(min.Y, sl.y0())
		min.Z = minf(min.Z, sl.z0)
		max.X = maxf(max.X, sl.x1())
		max.Y = maxf(max.Y, sl.y1())
		max.Z = maxf(max.Z, sl.z1)
	}
	return min, max
}

func zBreakpoints(slabs []slab) []float64 {
	var zs []float64
	for _, s := range slabs {
		zs = append(zs, s.z0, s.z1)
	}
	return sortedUnique(zs)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
