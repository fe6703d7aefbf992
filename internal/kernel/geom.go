// Package kernel provides the sketch-extrude-subtract solid modeling backend
// used by the parametric templates.
package kernel

import (
	"math"
	"sort"
)

// unionRectArea computes the area covered by the union of the slab footprints
// using a coordinate-compression sweep over x-strips.
func unionRectArea(slabs []slab) float64 {
	var xs []float64
	for _, s := range slabs {
		xs = append(xs, s.x0(), s.x1())
	}
	xs = sortedUnique(xs)

	var area float64
	for i := 0; i+1 < len(xs); i++ {
		xa, xb := xs[i], xs[i+1]
		var spans [][2]float64
		for _, s := range slabs {
			if s.x0() <= xa && s.x1() >= xb {
				spans = append(spans, [2]float64{s.y0(), s.y1()})
			}
		}
		area += (xb - xa) * mergedLength(spans)
	}
	return area
}

// mergedLength returns the total length covered by a set of 1D intervals.
func mergedLength(spans [][2]float64) float64 {
	if len(spans) == 0 {
		return 0
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	total := 0.0
	lo, hi := spans[0][0], spans[0][1]
	for _, sp := range spans[1:] {
		if sp[0] > hi {
			total += hi - lo
			lo, hi = sp[0], sp[1]
			continue
		}
		if sp[1] > hi {
			hi = sp[1]
		}
	}
	return total + (hi - lo)
}

// circleUnionArea computes the area of the bore circle inside the union of the
// slab footprints, by inclusion-exclusion over rectangle intersections.
func circleUnionArea(bo bore, slabs []slab) float64 {
	n := len(slabs)
	var area float64
	for mask := 1; mask < 1<<n; mask++ {
		x0, y0 := math.Inf(-1), math.Inf(-1)
		x1, y1 := math.Inf(1), math.Inf(1)
		bits := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			bits++
			x0 = maxf(x0, slabs[i].x0())
			y0 = maxf(y0, slabs[i].y0())
			x1 = minf(x1, slabs[i].x1())
			y1 = minf(y1, slabs[i].y1())
		}
		if x0 >= x1 || y0 >= y1 {
			continue
		}
		a := circleRectArea(bo.cx, bo.cy, bo.r, x0, y0, x1, y1)
		if bits%2 == 1 {
			area += a
		} else {
			area -= a
		}
	}
	return area
}

// circleRectArea computes the exact area of intersection between the circle
// centred at (cx, cy) with radius r and the rectangle [x0,x1]×[y0,y1].
func circleRectArea(cx, cy, r, x0, y0, x1, y1 float64) float64 {
	return cornerArea(x1-cx, y1-cy, r) -
		cornerArea(x0-cx, y1-cy, r) -
		cornerArea(x1-cx, y0-cy, r) +
		cornerArea(x0-cx, y0-cy, r)
}

// cornerArea returns the area of the disc of radius r centred at the origin
// that lies in the quadrant {X ≤ x, Y ≤ y}.
func cornerArea(x, y, r float64) float64 {
	if x <= -r || y <= -r {
		return 0
	}
	x = minf(x, r)
	if y >= r {
		// Full vertical extent of the disc left of x.
		return 2 * (chordIntegral(x, r) - chordIntegral(-r, r))
	}

	c := math.Sqrt(r*r - y*y)
	var area float64
	if y >= 0 {
		// Caps where the disc lies entirely below the y cut.
		if x > c {
			area += 2 * (chordIntegral(x, r) - chordIntegral(c, r))
		}
		area += 2 * (chordIntegral(minf(x, -c), r) - chordIntegral(-r, r))
	}
	// Middle band where the y cut passes through the disc.
	if x > -c {
		m := minf(x, c)
		area += y*(m+c) + chordIntegral(m, r) - chordIntegral(-c, r)
	}
	return area
}

// chordIntegral is the antiderivative of sqrt(r²−t²), clamped to [−r, r].
func chordIntegral(t, r float64) float64 {
	t = maxf(-r, minf(t, r))
	return 0.5 * (t*math.Sqrt(r*r-t*t) + r*r*math.Asin(t/r))
}

// sortedUnique sorts the values ascending and drops duplicates.
func sortedUnique(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
