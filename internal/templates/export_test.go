package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSTL_RoundTrip(t *testing.T) {
	solid, err := NewMountingBracket().Generate3D(lBracketParams(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bracket_l.stl")
	require.NoError(t, ExportSTL(solid, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDXF_RoundTrip(t *testing.T) {
	doc, err := NewMountingBracket().Generate2D(flatBracketParams(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bracket_flat.dxf")
	require.NoError(t, ExportDXF(doc, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExport_CreatesParentDirectories(t *testing.T) {
	solid, err := NewMountingBracket().Generate3D(lBracketParams(t))
	require.NoError(t, err)
	doc, err := NewMountingBracket().Generate2D(lBracketParams(t))
	require.NoError(t, err)

	base := t.TempDir()
	stlPath := filepath.Join(base, "nested", "dir", "bracket_l.stl")
	dxfPath := filepath.Join(base, "other", "dir", "bracket_l.dxf")

	require.NoError(t, ExportSTL(solid, stlPath))
	require.NoError(t, ExportDXF(doc, dxfPath))

	assert.FileExists(t, stlPath)
	assert.FileExists(t, dxfPath)
}
