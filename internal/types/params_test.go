package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBracketParams_Valid(t *testing.T) {
	params, err := NewBracketParams(100, 80, 5, 8, 4, "Steel", "L")
	require.NoError(t, err)

	assert.Equal(t, 100.0, params.Width)
	assert.Equal(t, 80.0, params.Height)
	assert.Equal(t, 5.0, params.Thickness)
	assert.Equal(t, 8.0, params.HoleDiameter)
	assert.Equal(t, 4, params.HoleCount)
	assert.Equal(t, "Steel", params.Material)
	assert.True(t, params.IsL())
}

func TestNewBracketParams_Defaults(t *testing.T) {
	params, err := NewBracketParams(100, 80, 5, 8, 4, "", "")
	require.NoError(t, err)

	assert.Equal(t, "Steel", params.Material)
	assert.Equal(t, "L", params.BracketType)
}

func TestNewBracketParams_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name                                   string
		width, height, thickness, holeDiameter float64
		holeCount                              int
	}{
		{"zero width", 0, 80, 5, 8, 4},
		{"negative width", -100, 80, 5, 8, 4},
		{"zero height", 100, 0, 5, 8, 4},
		{"negative thickness", 100, 80, -5, 8, 4},
		{"zero hole diameter", 100, 80, 5, 0, 4},
		{"zero hole count", 100, 80, 5, 8, 0},
		{"hole count too large", 100, 80, 5, 8, 11},
		{"negative hole count", 100, 80, 5, 8, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBracketParams(tt.width, tt.height, tt.thickness, tt.holeDiameter, tt.holeCount, "", "")
			assert.Error(t, err)
		})
	}
}

func TestNewBracketParams_InvalidBracketType(t *testing.T) {
	_, err := NewBracketParams(100, 80, 5, 8, 4, "Steel", "T")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bracket_type")
}

func TestBracketParams_TypeCaseInsensitive(t *testing.T) {
	for _, bt := range []string{"l", "L", "FLAT", "Flat", "flat"} {
		params, err := NewBracketParams(100, 80, 5, 8, 4, "", bt)
		require.NoError(t, err, "bracket type %q should be accepted", bt)

		if bt == "l" || bt == "L" {
			assert.True(t, params.IsL())
		} else {
			assert.False(t, params.IsL())
		}
	}
}

func TestBracketParams_HoleSpacing(t *testing.T) {
	params, err := NewBracketParams(100, 80, 5, 8, 4, "", "")
	require.NoError(t, err)

	assert.InDelta(t, 20.0, params.HoleSpacing(), 1e-9)
}

func TestBracketParams_String(t *testing.T) {
	params, err := NewBracketParams(100, 80, 5, 8, 4, "Steel", "L")
	require.NoError(t, err)

	assert.Equal(t, "L 100x80x5mm, 4x Ø8mm, Steel", params.String())
}
