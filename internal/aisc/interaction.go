package aisc

import (
	"fmt"
	"math"
)

// CheckInteraction verifies combined axial compression and flexure per
// Chapter H (equations H1-1a and H1-1b). A compression result is
// required; flexure results may be nil for an axis with no bending
// demand, in which case that axis contributes nothing.
func CheckInteraction(loads LoadConditions, comp *CompressionResult, flexStrong, flexWeak *FlexureResult) (*InteractionResult, error) {
	if comp == nil {
		return nil, ErrCompressionRequired
	}

	pc := comp.Pc
	if pc <= 0 {
		return nil, fmt.Errorf("zero compression capacity in interaction check: Pc=%g", pc)
	}

	var mcx, mcy float64
	if flexStrong != nil {
		mcx = flexStrong.Mb
	}
	if flexWeak != nil {
		mcy = flexWeak.Mb
	}

	pr := math.Abs(loads.Pu)
	mrx := math.Abs(loads.Mux)
	mry := math.Abs(loads.Muy)

	prPc := pr / pc
	var mrxMcx, mryMcy float64
	if mcx > 0 {
		mrxMcx = mrx / mcx
	}
	if mcy > 0 {
		mryMcy = mry / mcy
	}

	var value float64
	var equation string
	if prPc >= 0.2 {
		// H1-1a
		value = prPc + (8.0/9.0)*(mrxMcx+mryMcy)
		equation = "H1-1a"
	} else {
		// H1-1b
		value = pr/(2*pc) + (mrxMcx + mryMcy)
		equation = "H1-1b"
	}

	return &InteractionResult{
		Value:     value,
		Equation:  equation,
		PrPc:      prPc,
		MrxMcx:    mrxMcx,
		MryMcy:    mryMcy,
		Pr:        pr,
		Pc:        pc,
		Mrx:       mrx,
		Mcx:       mcx,
		Mry:       mry,
		Mcy:       mcy,
		Passed:    value <= 1.0,
		Equations: []string{equation},
	}, nil
}
