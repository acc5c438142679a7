package aisc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTensionYieldingGoverns(t *testing.T) {
	p := testSection()
	p.A = 100
	loads := NewLoadConditions(100000, 0, 0, 0, 0, 0, 0)

	res, err := CheckTension(p, loads)
	require.NoError(t, err)

	// φPn yielding = 0.9·3515·100 = 316350, φPn rupture = 0.75·4570·100 = 342750
	assert.InEpsilon(t, 316350.0, res.PtYielding, 1e-9)
	assert.InEpsilon(t, 342750.0, res.PtRupture, 1e-9)
	assert.InEpsilon(t, 316350.0, res.Pt, 1e-9)
	assert.Equal(t, TensionYielding, res.GoverningMode)

	// Closed-form check: 100000 / 316350 = 0.316105...
	assert.InEpsilon(t, 100000.0/316350.0, res.Ratio, 1e-9)
	assert.True(t, res.Passed)
}

func TestCheckTensionRuptureGoverns(t *testing.T) {
	p := testSection()
	p.A = 100
	p.Fu = 4000 // 0.75·4000 = 3000 < 0.9·3515 = 3163.5 per unit area
	loads := NewLoadConditions(350000, 0, 0, 0, 0, 0, 0)

	res, err := CheckTension(p, loads)
	require.NoError(t, err)

	assert.Equal(t, TensionRupture, res.GoverningMode)
	assert.InEpsilon(t, 300000.0, res.Pt, 1e-9)
	assert.False(t, res.Passed)
	assert.Greater(t, res.Ratio, 1.0)
}

func TestCheckTensionGoverningIsMinimum(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(50000, 0, 0, 0, 0, 0, 0)

	res, err := CheckTension(p, loads)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Pt, res.PtYielding)
	assert.LessOrEqual(t, res.Pt, res.PtRupture)
	assert.True(t, res.Pt == res.PtYielding || res.Pt == res.PtRupture)
}

func TestCheckTensionTieGoesToRupture(t *testing.T) {
	p := testSection()
	// 0.9·Fy = 0.75·Fu when Fu = 1.2·Fy: both factored capacities equal
	p.Fy = 3000
	p.Fu = 3600
	loads := NewLoadConditions(10000, 0, 0, 0, 0, 0, 0)

	res, err := CheckTension(p, loads)
	require.NoError(t, err)

	assert.Equal(t, res.PtYielding, res.PtRupture)
	assert.Equal(t, TensionRupture, res.GoverningMode)
}

func TestCheckTensionZeroCapacity(t *testing.T) {
	p := testSection()
	p.A = 0
	loads := NewLoadConditions(10000, 0, 0, 0, 0, 0, 0)

	_, err := CheckTension(p, loads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero tension capacity")
}
