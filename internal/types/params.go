// Package types provides type definitions for structured data used throughout the cad-automation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default parameter values applied by NewBracketParams when the field is unset.
const (
	DefaultMaterial    = "Steel"
	DefaultBracketType = BracketTypeL
)

// Bracket type variants. Matching is case-insensitive on read.
const (
	BracketTypeL    = "L"
	BracketTypeFlat = "flat"
)

// BracketParams holds the validated parameter set for mounting bracket generation.
// All dimensions are millimetres. Construct via NewBracketParams or call Validate
// after unmarshalling; an invalid parameter set is never silently clamped.
type BracketParams struct {
	Width        float64 `json:"width" validate:"required,gt=0"`
	Height       float64 `json:"height" validate:"required,gt=0"`
	Thickness    float64 `json:"thickness" validate:"required,gt=0"`
	HoleDiameter float64 `json:"hole_diameter" validate:"required,gt=0"`
	HoleCount    int     `json:"hole_count" validate:"required,min=1,max=10"`
	Material     string  `json:"material,omitempty"`
	BracketType  string  `json:"bracket_type,omitempty"`
}

// NewBracketParams builds a BracketParams with defaults applied and all
// invariants checked. Material defaults to "Steel" and bracket type to "L".
func NewBracketParams(width, height, thickness, holeDiameter float64, holeCount int, material, bracketType string) (*BracketParams, error) {
	p := &BracketParams{
		Width:        width,
		Height:       height,
		Thickness:    thickness,
		HoleDiameter: holeDiameter,
		HoleCount:    holeCount,
		Material:     material,
		BracketType:  bracketType,
	}
	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyDefaults fills the optional fields that were left empty.
func (p *BracketParams) ApplyDefaults() {
	if p.Material == "" {
		p.Material = DefaultMaterial
	}
	if p.BracketType == "" {
		p.BracketType = DefaultBracketType
	}
}

// Validate validates the BracketParams using the validator.
// The bracket type is checked explicitly because the allowed values are
// matched case-insensitively, which struct tags cannot express.
func (p *BracketParams) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !strings.EqualFold(p.BracketType, BracketTypeL) && !strings.EqualFold(p.BracketType, BracketTypeFlat) {
		return fmt.Errorf("invalid bracket_type %q: must be %q or %q", p.BracketType, BracketTypeL, BracketTypeFlat)
	}
	return nil
}

// IsL reports whether the parameters describe an L-bracket.
func (p *BracketParams) IsL() bool {
	return strings.EqualFold(p.BracketType, BracketTypeL)
}

// HoleSpacing returns the even spacing of the mounting holes along the width.
func (p *BracketParams) HoleSpacing() float64 {
	return p.Width / float64(p.HoleCount+1)
}

// String returns a short human-readable summary, e.g. "L 100x80x5mm, 4x Ø8mm, Steel".
func (p *BracketParams) String() string {
	return fmt.Sprintf("%s %gx%gx%gmm, %dx Ø%gmm, %s",
		strings.ToUpper(p.BracketType), p.Width, p.Height, p.Thickness, p.HoleCount, p.HoleDiameter, p.Material)
}
