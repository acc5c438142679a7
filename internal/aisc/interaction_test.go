package aisc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionEquationA(t *testing.T) {
	comp := &CompressionResult{Pc: 1000}
	flexStrong := &FlexureResult{Axis: StrongAxis, Mb: 900}
	flexWeak := &FlexureResult{Axis: WeakAxis, Mb: 450}
	loads := LoadConditions{Pu: -500, Mux: 300, Muy: 90}

	res, err := CheckInteraction(loads, comp, flexStrong, flexWeak)
	require.NoError(t, err)

	// Pr/Pc = 0.5 ≥ 0.2 selects H1-1a
	assert.Equal(t, "H1-1a", res.Equation)
	assert.InEpsilon(t, 0.5, res.PrPc, 1e-12)
	assert.InEpsilon(t, 300.0/900.0, res.MrxMcx, 1e-12)
	assert.InEpsilon(t, 90.0/450.0, res.MryMcy, 1e-12)

	want := 0.5 + (8.0/9.0)*(300.0/900.0+90.0/450.0)
	assert.InEpsilon(t, want, res.Value, 1e-12)
	assert.True(t, res.Passed)
}

func TestInteractionEquationB(t *testing.T) {
	comp := &CompressionResult{Pc: 1000}
	flexStrong := &FlexureResult{Axis: StrongAxis, Mb: 900}
	loads := LoadConditions{Pu: -100, Mux: 450}

	res, err := CheckInteraction(loads, comp, flexStrong, nil)
	require.NoError(t, err)

	// Pr/Pc = 0.1 < 0.2 selects H1-1b
	assert.Equal(t, "H1-1b", res.Equation)

	want := 100.0/(2*1000.0) + 450.0/900.0
	assert.InEpsilon(t, want, res.Value, 1e-12)
}

func TestInteractionBoundarySelectsEquationA(t *testing.T) {
	comp := &CompressionResult{Pc: 1000}
	flexStrong := &FlexureResult{Axis: StrongAxis, Mb: 900}
	loads := LoadConditions{Pu: -200, Mux: 300}

	res, err := CheckInteraction(loads, comp, flexStrong, nil)
	require.NoError(t, err)

	// The selector is inclusive at Pr/Pc = 0.2
	assert.Equal(t, "H1-1a", res.Equation)

	// The two formulas intentionally disagree at the boundary; the
	// H1-1a value is reported, not the H1-1b one
	wantA := 0.2 + (8.0/9.0)*(300.0/900.0)
	wantB := 0.1 + 300.0/900.0
	assert.InEpsilon(t, wantA, res.Value, 1e-12)
	assert.NotEqual(t, wantB, res.Value)
}

func TestInteractionSkipsMissingAxis(t *testing.T) {
	comp := &CompressionResult{Pc: 1000}
	flexStrong := &FlexureResult{Axis: StrongAxis, Mb: 900}

	// A weak-axis moment with no weak-axis flexure result contributes
	// nothing to the sum
	loads := LoadConditions{Pu: -500, Mux: 300, Muy: 9999}

	res, err := CheckInteraction(loads, comp, flexStrong, nil)
	require.NoError(t, err)

	assert.Zero(t, res.MryMcy)
	want := 0.5 + (8.0/9.0)*(300.0/900.0)
	assert.InEpsilon(t, want, res.Value, 1e-12)
}

func TestInteractionRequiresCompression(t *testing.T) {
	flexStrong := &FlexureResult{Axis: StrongAxis, Mb: 900}
	loads := LoadConditions{Pu: -500, Mux: 300}

	_, err := CheckInteraction(loads, nil, flexStrong, nil)
	require.ErrorIs(t, err, ErrCompressionRequired)
}

func TestInteractionZeroCapacity(t *testing.T) {
	comp := &CompressionResult{Pc: 0}
	loads := LoadConditions{Pu: -500, Mux: 300}

	_, err := CheckInteraction(loads, comp, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero compression capacity")
}
