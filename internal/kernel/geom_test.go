package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleRectArea(t *testing.T) {
	const r = 4.0
	full := math.Pi * r * r

	tests := []struct {
		name           string
		cx, cy         float64
		x0, y0, x1, y1 float64
		expected       float64
	}{
		{"fully inside", 0, 0, -50, -40, 50, 40, full},
		{"centred on edge", 0, 40, -50, -40, 50, 40, full / 2},
		{"centred on corner", 50, 40, -50, -40, 50, 40, full / 4},
		{"fully outside", 100, 0, -50, -40, 50, 40, 0},
		{"rect contains nothing of circle", 0, 50, -50, -40, 50, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := circleRectArea(tt.cx, tt.cy, r, tt.x0, tt.y0, tt.x1, tt.y1)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCircleRectArea_TinyRect(t *testing.T) {
	// A 2x2 square centred inside a large circle keeps its own area.
	got := circleRectArea(0, 0, 10, -1, -1, 1, 1)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestUnionRectArea(t *testing.T) {
	a := slab{cx: 0, cy: 0, w: 100, h: 80}
	b := slab{cx: 25, cy: 0, w: 100, h: 80}

	assert.InDelta(t, 100*80, unionRectArea([]slab{a}), 1e-9)
	assert.InDelta(t, 100*80, unionRectArea([]slab{a, a}), 1e-9)
	assert.InDelta(t, 125*80, unionRectArea([]slab{a, b}), 1e-9)
}

func TestUnionRectArea_Disjoint(t *testing.T) {
	a := slab{cx: 0, cy: 0, w: 10, h: 10}
	b := slab{cx: 100, cy: 0, w: 10, h: 10}

	assert.InDelta(t, 200.0, unionRectArea([]slab{a, b}), 1e-9)
}

func TestCircleUnionArea_OverlappingSlabs(t *testing.T) {
	// Circle inside the overlap of two slabs counts once.
	a := slab{cx: 0, cy: 0, w: 100, h: 80}
	b := slab{cx: 25, cy: 0, w: 100, h: 80}
	bo := bore{cx: 25, cy: 0, r: 4}

	assert.InDelta(t, math.Pi*16, circleUnionArea(bo, []slab{a, b}), 1e-9)
}

func TestMergedLength(t *testing.T) {
	spans := [][2]float64{{0, 10}, {5, 15}, {20, 25}}
	assert.InDelta(t, 20.0, mergedLength(spans), 1e-9)
	assert.Equal(t, 0.0, mergedLength(nil))
}
