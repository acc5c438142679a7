package aisc

import (
	"fmt"
	"math"
)

// CheckTension verifies the member against the Chapter D tension limit states:
// yielding on the gross section (D2-1) and rupture on the effective net
// section (D2-2). The effective net area is taken equal to the gross area,
// a conservative simplification in lieu of a true net-area deduction.
func CheckTension(p SectionProperties, loads LoadConditions) (*TensionResult, error) {
	// D2(a): tensile yielding in the gross section
	pnYielding := p.Fy * p.A
	ptYielding := PhiTensionYielding * pnYielding

	// D2(b): tensile rupture in the effective net section, Ae ≈ Ag
	ae := p.A
	pnRupture := p.Fu * ae
	ptRupture := PhiTensionRupture * pnRupture

	pt := math.Min(ptYielding, ptRupture)
	if pt <= 0 {
		return nil, fmt.Errorf("zero tension capacity: A=%g, Fy=%g, Fu=%g", p.A, p.Fy, p.Fu)
	}

	mode := TensionRupture
	if ptYielding < ptRupture {
		mode = TensionYielding
	}

	ratio := math.Abs(loads.Pu) / pt

	return &TensionResult{
		PnYielding:    pnYielding,
		PtYielding:    ptYielding,
		PnRupture:     pnRupture,
		PtRupture:     ptRupture,
		Pt:            pt,
		Pu:            loads.Pu,
		Ratio:         ratio,
		Passed:        ratio <= 1.0,
		GoverningMode: mode,
		Equations:     []string{"D2-1", "D2-2"},
	}, nil
}
