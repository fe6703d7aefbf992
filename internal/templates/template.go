// Package templates provides parametric CAD templates that turn a validated
// parameter set into a 3D solid and a matching AS 1100 style 2D drawing.
package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IAMSamuelRodda/cad-automation-system/internal/drafting"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/kernel"
	"github.com/IAMSamuelRodda/cad-automation-system/internal/types"
)

// Template is the capability every parametric template provides: generating
// the 3D solid and the 2D drawing for one parameter set. Generation calls are
// pure; backend failures propagate unmodified.
type Template interface {
	Name() string
	Generate3D(params *types.BracketParams) (*kernel.Solid, error)
	Generate2D(params *types.BracketParams) (*drafting.Document, error)
}

// ExportSTL writes the solid to path as ASCII STL, creating parent
// directories as needed.
func ExportSTL(solid *kernel.Solid, path string) error {
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]
	if err := solid.WriteSTL(f, name); err != nil {
		return fmt.Errorf("failed to export STL to %s: %w", path, err)
	}
	return f.Close()
}

// ExportDXF writes the drawing to path as DXF, creating parent directories
// as needed.
func ExportDXF(doc *drafting.Document, path string) error {
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := drafting.WriteDXF(doc, f); err != nil {
		return fmt.Errorf("failed to export DXF to %s: %w", path, err)
	}
	return f.Close()
}

func createWithParents(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
