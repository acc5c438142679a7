package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/catalog"
)

func TestExportCapacityCurve(t *testing.T) {
	p, err := catalog.Get("w14x90")
	require.NoError(t, err)

	loads := aisc.NewLoadConditions(0, 5e6, 0, 400, 400, 400, 400)

	filename := filepath.Join(t.TempDir(), "capacity.png")
	require.NoError(t, ExportCapacityCurve(p, loads, filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCapacityCurveUnsupportedExtension(t *testing.T) {
	p, err := catalog.Get("w14x90")
	require.NoError(t, err)

	loads := aisc.NewLoadConditions(0, 5e6, 0, 400, 400, 400, 400)

	filename := filepath.Join(t.TempDir(), "capacity.bogus")
	assert.Error(t, ExportCapacityCurve(p, loads, filename))
}
