// Package kernel provides the sketch-extrude-subtract solid modeling backend
// used by the parametric templates.
package kernel

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// boreSegments is the number of facets used to approximate a bore wall.
const boreSegments = 32

// Triangle is a single mesh facet.
type Triangle struct {
	A, B, C Vec3
}

// Mesh tessellates the solid into a facet shell: the six faces of each
// extrusion plus the cylindrical wall of every bore that intersects it.
// Planar faces are not trimmed around the bores; downstream viewers render
// the bore walls as interior shells.
func (s *Solid) Mesh() []Triangle {
	var tris []Triangle
	for _, sl := range s.slabs {
		tris = append(tris, boxTriangles(sl)...)
		for _, bo := range s.bores {
			if bo.cx+bo.r < sl.x0() || bo.cx-bo.r > sl.x1() ||
				bo.cy+bo.r < sl.y0() || bo.cy-bo.r > sl.y1() {
				continue
			}
			tris = append(tris, boreWall(bo, sl.z0, sl.z1)...)
		}
	}
	return tris
}

// WriteSTL serializes the tessellated solid as ASCII STL.
func (s *Solid) WriteSTL(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for _, t := range s.Mesh() {
		n := facetNormal(t)
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []Vec3{t.A, t.B, t.C} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}

func boxTriangles(sl slab) []Triangle {
	x0, x1 := sl.x0(), sl.x1()
	y0, y1 := sl.y0(), sl.y1()
	z0, z1 := sl.z0, sl.z1

	v := [8]Vec3{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom, normal -z
		{4, 5, 6, 7}, // top, normal +z
		{0, 1, 5, 4}, // front, normal -y
		{2, 3, 7, 6}, // back, normal +y
		{0, 4, 7, 3}, // left, normal -x
		{1, 2, 6, 5}, // right, normal +x
	}
	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{v[q[0]], v[q[1]], v[q[2]]},
			Triangle{v[q[0]], v[q[2]], v[q[3]]},
		)
	}
	return tris
}

func boreWall(bo bore, z0, z1 float64) []Triangle {
	tris := make([]Triangle, 0, 2*boreSegments)
	for i := 0; i < boreSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / boreSegments
		a1 := 2 * math.Pi * float64(i+1) / boreSegments
		p0 := Vec3{bo.cx + bo.r*math.Cos(a0), bo.cy + bo.r*math.Sin(a0), z0}
		p1 := Vec3{bo.cx + bo.r*math.Cos(a1), bo.cy + bo.r*math.Sin(a1), z0}
		q0 := Vec3{p0.X, p0.Y, z1}
		q1 := Vec3{p1.X, p1.Y, z1}
		// Wound so the normal faces the bore axis (into the removed material).
		tris = append(tris,
			Triangle{p0, q0, q1},
			Triangle{p0, q1, p1},
		)
	}
	return tris
}

func facetNormal(t Triangle) Vec3 {
	ux, uy, uz := t.B.X-t.A.X, t.B.Y-t.A.Y, t.B.Z-t.A.Z
	vx, vy, vz := t.C.X-t.A.X, t.C.Y-t.A.Y, t.C.Z-t.A.Z
	n := Vec3{uy*vz - uz*vy, uz*vx - ux*vz, ux*vy - uy*vx}
	mag := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if mag == 0 {
		return Vec3{}
	}
	return Vec3{n.X / mag, n.Y / mag, n.Z / mag}
}
