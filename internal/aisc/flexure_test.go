package aisc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ltbLengths computes Lp, Lr and rts the same way the engine does, for
// use in scenario setup.
func ltbLengths(p SectionProperties) (lp, lr, rts float64) {
	lp = 1.76 * p.Ry * math.Sqrt(p.E/p.Fy)
	rts = math.Sqrt(math.Sqrt(p.Iy*p.Cw) / p.Sx)
	jc := p.J / (p.Sx * p.Ho)
	lr = 1.95 * rts * (p.E / (0.7 * p.Fy)) *
		math.Sqrt(jc+math.Sqrt(jc*jc+6.76*math.Pow(0.7*p.Fy/p.E, 2)))
	return lp, lr, rts
}

func TestFlexureStrongYielding(t *testing.T) {
	p := testSection()
	lp, _, _ := ltbLengths(p)

	loads := NewLoadConditions(0, 5e6, 0, lp/2, 0, 0, lp/2)

	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)

	mp := p.Fy * p.Zx
	assert.Equal(t, FlexureYielding, res.LimitState)
	assert.InEpsilon(t, mp, res.Mn, 1e-12)
	assert.InEpsilon(t, 0.9*mp, res.Mb, 1e-12)
	assert.InEpsilon(t, 5e6/(0.9*mp), res.Ratio, 1e-12)
	assert.Equal(t, []string{"F2-1", "F2-5", "F2-6"}, res.Equations)
}

func TestFlexureStrongContinuityAtLp(t *testing.T) {
	p := testSection()
	lp, lr, _ := ltbLengths(p)
	mp := p.Fy * p.Zx

	// At Lt = Lp exactly the yielding branch applies and returns Mp
	loads := NewLoadConditions(0, 1e6, 0, lp, 0, 0, lp)
	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, FlexureYielding, res.LimitState)
	assert.InEpsilon(t, mp, res.Mn, 1e-12)

	// The adjacent inelastic formula evaluated at Lt = Lp also gives Mp
	interpolated := 1.0 * (mp - (mp-0.7*p.Fy*p.Sx)*(lp-lp)/(lr-lp))
	assert.Equal(t, mp, interpolated)
}

func TestFlexureStrongInelasticLTB(t *testing.T) {
	p := testSection()
	lp, lr, _ := ltbLengths(p)

	lt := (lp + lr) / 2
	loads := NewLoadConditions(0, 1e6, 0, lt, 0, 0, lt)
	loads.Cb = 1.14

	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)

	mp := p.Fy * p.Zx
	want := 1.14 * (mp - (mp-0.7*p.Fy*p.Sx)*(lt-lp)/(lr-lp))
	assert.Equal(t, FlexureLTBInelastic, res.LimitState)
	assert.InEpsilon(t, want, res.Mn, 1e-12)
	assert.Equal(t, []string{"F2-2", "F2-5", "F2-6"}, res.Equations)
}

func TestFlexureStrongInclusiveAtLr(t *testing.T) {
	p := testSection()
	_, lr, _ := ltbLengths(p)

	loads := NewLoadConditions(0, 1e6, 0, lr, 0, 0, lr)

	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)

	// Lt equal to Lr stays in the inelastic band
	assert.Equal(t, FlexureLTBInelastic, res.LimitState)
}

func TestFlexureStrongElasticLTB(t *testing.T) {
	p := testSection()
	lp, lr, rts := ltbLengths(p)
	require.Greater(t, lr, lp)

	lt := 3 * lr
	loads := NewLoadConditions(0, 1e6, 0, lt, 0, 0, lt)

	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)

	jc := p.J / (p.Sx * p.Ho)
	ltRts := lt / rts
	fcr := (math.Pi * math.Pi * p.E / (ltRts * ltRts)) *
		math.Sqrt(1+0.078*jc*ltRts*ltRts)
	assert.Equal(t, FlexureLTBElastic, res.LimitState)
	assert.InEpsilon(t, fcr*p.Sx, res.Mn, 1e-12)
	assert.Equal(t, []string{"F2-3", "F2-5", "F2-6"}, res.Equations)
}

func TestFlexureStrongElasticCappedAtPlastic(t *testing.T) {
	p := testSection()
	_, lr, _ := ltbLengths(p)

	// A large Cb pushes the elastic buckling stress past the plastic
	// moment; the nominal moment must cap at Mp
	lt := 1.01 * lr
	loads := NewLoadConditions(0, 1e6, 0, lt, 0, 0, lt)
	loads.Cb = 3.0

	res, err := CheckFlexure(p, loads, StrongAxis)
	require.NoError(t, err)

	mp := p.Fy * p.Zx
	assert.Equal(t, FlexureLTBElastic, res.LimitState)
	assert.InEpsilon(t, mp, res.Mn, 1e-12)
}

func TestFlexureWeakCompact(t *testing.T) {
	p := testSection()

	loads := NewLoadConditions(0, 0, 2e6, 0, 0, 0, 0)

	res, err := CheckFlexure(p, loads, WeakAxis)
	require.NoError(t, err)

	mp := p.Fy * p.Zy
	assert.Equal(t, FlexureYielding, res.LimitState)
	assert.Equal(t, Compact, res.FlangeClass)
	assert.InEpsilon(t, mp, res.Mn, 1e-12)
	assert.InEpsilon(t, 2e6/(0.9*mp), res.Ratio, 1e-12)
	assert.Equal(t, []string{"F6-1"}, res.Equations)
}

func TestFlexureWeakNoncompact(t *testing.T) {
	p := testSection()
	p.Tf = 1.0 // λf = 15.24, between λp ≈ 9.15 and λr ≈ 24.08

	loads := NewLoadConditions(0, 0, 2e6, 0, 0, 0, 0)

	res, err := CheckFlexure(p, loads, WeakAxis)
	require.NoError(t, err)
	require.Equal(t, Noncompact, res.FlangeClass)

	sqrtEFy := math.Sqrt(p.E / p.Fy)
	lambdaF := p.Bf / (2 * p.Tf)
	lambdaP := 0.38 * sqrtEFy
	lambdaR := 1.0 * sqrtEFy

	mp := p.Fy * p.Zy
	want := mp - (mp-0.70*p.Sy*p.Sy)*(lambdaF-lambdaP)/(lambdaR-lambdaP)
	assert.Equal(t, FlexureNoncompact, res.LimitState)
	assert.InEpsilon(t, want, res.Mn, 1e-12)
	assert.Equal(t, []string{"F6-2"}, res.Equations)
}

func TestFlexureWeakSlender(t *testing.T) {
	p := testSection()
	p.Tf = 0.4 // λf ≈ 38.1, slender

	loads := NewLoadConditions(0, 0, 1e5, 0, 0, 0, 0)

	res, err := CheckFlexure(p, loads, WeakAxis)
	require.NoError(t, err)
	require.Equal(t, Slender, res.FlangeClass)

	bt := p.Bf / p.Tf
	fcr := 0.70 * p.E / (bt * bt)
	assert.Equal(t, FlexureLocalBuckle, res.LimitState)
	assert.InEpsilon(t, fcr*p.Sy, res.Mn, 1e-12)
	assert.Equal(t, []string{"F6-3"}, res.Equations)
}

func TestFlexureStrongDegenerateModulus(t *testing.T) {
	p := testSection()
	p.Sx = 0

	loads := NewLoadConditions(0, 1e6, 0, 100, 0, 0, 100)

	_, err := CheckFlexure(p, loads, StrongAxis)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate geometry")
}
