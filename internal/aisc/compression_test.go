package aisc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCompressionInelastic(t *testing.T) {
	p := testSection()
	// KL/r = 640/6.40 = 100, below 4.71√(E/Fy) ≈ 113.4
	loads := NewLoadConditions(-100000, 0, 0, 640, 640, 640, 640)

	res, err := CheckCompression(p, loads)
	require.NoError(t, err)

	assert.False(t, res.SlenderElements)
	assert.Equal(t, BucklingInelastic, res.BucklingMode)
	assert.InEpsilon(t, 640/p.Rx, res.SlendernessX, 1e-12)
	assert.InEpsilon(t, 100.0, res.SlendernessY, 1e-12)
	assert.InEpsilon(t, 100.0, res.Slenderness, 1e-12)

	fe := math.Pi * math.Pi * p.E / (100.0 * 100.0)
	fcr := math.Pow(0.658, p.Fy/fe) * p.Fy
	assert.InEpsilon(t, fe, res.Fe, 1e-12)
	assert.InEpsilon(t, fcr, res.Fcr, 1e-12)
	assert.InEpsilon(t, fcr*p.A, res.Pn, 1e-12)
	assert.InEpsilon(t, 0.9*fcr*p.A, res.Pc, 1e-12)
	assert.InEpsilon(t, 100000.0/(0.9*fcr*p.A), res.Ratio, 1e-12)
	assert.Equal(t, []string{"E3-1", "E3-2", "E3-4"}, res.Equations)
}

func TestCheckCompressionElastic(t *testing.T) {
	p := testSection()
	// KL/r = 960/6.40 = 150, above 4.71√(E/Fy) ≈ 113.4 with Fy/Fe > 2.25
	loads := NewLoadConditions(-50000, 0, 0, 960, 960, 960, 960)

	res, err := CheckCompression(p, loads)
	require.NoError(t, err)

	assert.Equal(t, BucklingElastic, res.BucklingMode)

	fe := math.Pi * math.Pi * p.E / (150.0 * 150.0)
	assert.Greater(t, p.Fy/fe, 2.25)
	assert.InEpsilon(t, 0.877*fe, res.Fcr, 1e-12)
	assert.Equal(t, []string{"E3-1", "E3-3", "E3-4"}, res.Equations)
}

func TestCheckCompressionGoverningSlenderness(t *testing.T) {
	p := testSection()
	// Different effective lengths per axis: the larger KL/r governs
	loads := NewLoadConditions(-50000, 0, 0, 640, 884, 320, 640)

	res, err := CheckCompression(p, loads)
	require.NoError(t, err)

	assert.InEpsilon(t, 884/p.Rx, res.SlendernessX, 1e-12)
	assert.InEpsilon(t, 320/p.Ry, res.SlendernessY, 1e-12)
	assert.Equal(t, res.SlendernessY, res.Slenderness)
}

func TestCheckCompressionSlenderFlangeDispatch(t *testing.T) {
	p := testSection()
	p.Tf = 0.4 // λf ≈ 38.1, above λr comp ≈ 35.9: slender flange

	loads := NewLoadConditions(-50000, 0, 0, 320, 320, 320, 320)

	res, err := CheckCompression(p, loads)
	require.NoError(t, err)

	assert.True(t, res.SlenderElements)
	assert.Less(t, res.EffectiveFlangeWidth, p.Bf)
	assert.Less(t, res.EffectiveArea, p.A)
	assert.InEpsilon(t, p.Fy*res.EffectiveArea/p.A, res.FyModified, 1e-12)
	assert.InEpsilon(t, res.Fcr*res.EffectiveArea, res.Pn, 1e-12)
	assert.InEpsilon(t, 0.9*res.Pn, res.Pc, 1e-12)
	assert.Equal(t, []string{"E7-1", "E7-2", "E7-3", "E7-5"}, res.Equations)

	// The web is not slender, so its effective width stays the full
	// clear depth
	assert.InEpsilon(t, p.D-2*p.Tf, res.EffectiveWebWidth, 1e-12)
}

func TestSlenderPathReducesToStandard(t *testing.T) {
	// For a section with no slender elements the effective area equals
	// the gross area and the slender-element path must reproduce the
	// standard path exactly.
	p := testSection()
	loads := NewLoadConditions(-100000, 0, 0, 640, 640, 640, 640)

	class, err := Classify(p)
	require.NoError(t, err)
	require.NotEqual(t, Slender, class.FlangeCompression)
	require.NotEqual(t, Slender, class.WebFlexure)

	standard, err := checkCompressionStandard(p, loads)
	require.NoError(t, err)

	forced, err := checkCompressionSlender(p, loads, class)
	require.NoError(t, err)

	assert.InEpsilon(t, p.A, forced.EffectiveArea, 1e-12)
	assert.InEpsilon(t, p.Fy, forced.FyModified, 1e-12)
	assert.InEpsilon(t, standard.Fcr, forced.Fcr, 1e-12)
	assert.InEpsilon(t, standard.Pn, forced.Pn, 1e-12)
	assert.InEpsilon(t, standard.Pc, forced.Pc, 1e-12)
	assert.InEpsilon(t, standard.Ratio, forced.Ratio, 1e-12)
	assert.Equal(t, standard.BucklingMode, forced.BucklingMode)
}

func TestCheckCompressionZeroSlenderness(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(-10000, 0, 0, 0, 0, 0, 0)

	_, err := CheckCompression(p, loads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero slenderness")
}

func TestCheckCompressionDegenerateRadius(t *testing.T) {
	p := testSection()
	p.Ry = 0
	loads := NewLoadConditions(-10000, 0, 0, 640, 640, 640, 640)

	_, err := CheckCompression(p, loads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate geometry")
}
