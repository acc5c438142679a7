package aisc

import (
	"fmt"
	"math"
)

// CheckCompression verifies the member against the Chapter E flexural
// buckling limit state. Sections whose compression flange or web is
// classified slender are checked with the Section E7 effective-width
// procedure; all others with the Section E3 procedure.
func CheckCompression(p SectionProperties, loads LoadConditions) (*CompressionResult, error) {
	class, err := Classify(p)
	if err != nil {
		return nil, err
	}

	if class.FlangeCompression == Slender || class.WebFlexure == Slender {
		return checkCompressionSlender(p, loads, class)
	}
	return checkCompressionStandard(p, loads)
}

// checkCompressionStandard is the Section E3 flexural buckling check for
// members without slender elements (equations E3-1 through E3-4).
func checkCompressionStandard(p SectionProperties, loads LoadConditions) (*CompressionResult, error) {
	klrX, klrY, klr, fe, err := bucklingStress(p, loads)
	if err != nil {
		return nil, err
	}

	// E3-2 / E3-3 regime selection
	lambdaC := p.Fy / fe
	var fcr float64
	var mode BucklingMode
	if klr <= 4.71*math.Sqrt(p.E/p.Fy) || lambdaC <= 2.25 {
		fcr = math.Pow(0.658, lambdaC) * p.Fy
		mode = BucklingInelastic
	} else {
		fcr = 0.877 * fe
		mode = BucklingElastic
	}

	pn := fcr * p.A // E3-1
	pc := PhiCompression * pn
	if pc <= 0 {
		return nil, fmt.Errorf("zero compression capacity: Fcr=%g, A=%g", fcr, p.A)
	}

	ratio := math.Abs(loads.Pu) / pc

	eqs := []string{"E3-1", "E3-2", "E3-4"}
	if mode == BucklingElastic {
		eqs = []string{"E3-1", "E3-3", "E3-4"}
	}

	return &CompressionResult{
		SlendernessX: klrX,
		SlendernessY: klrY,
		Slenderness:  klr,
		Fe:           fe,
		LambdaC:      lambdaC,
		Fcr:          fcr,
		Pn:           pn,
		Pc:           pc,
		Pu:           math.Abs(loads.Pu),
		Ratio:        ratio,
		Passed:       ratio <= 1.0,
		BucklingMode: mode,
		Equations:    eqs,
	}, nil
}

// checkCompressionSlender is the Section E7 check for members with slender
// elements (equations E7-1, E7-2, E7-3 and E7-5). Each slender element is
// reduced to an effective width, the gross area is reduced accordingly, and
// the E3 buckling regime is re-evaluated with a yield stress scaled by the
// effective-to-gross area ratio.
//
// The reference value Fn in the effective-width formula is taken from the
// design capacity of the E3 check on gross properties. Note that this is a
// factored force, not a stress.
func checkCompressionSlender(p SectionProperties, loads LoadConditions, class Classification) (*CompressionResult, error) {
	standard, err := checkCompressionStandard(p, loads)
	if err != nil {
		return nil, err
	}
	fn := standard.Pc

	// Effective flange width (E7-3)
	beFlange := p.Bf
	if class.FlangeCompression == Slender {
		lambdaF := p.Bf / (2 * p.Tf)
		lambdaR := LambdaRFlangeSlender * math.Sqrt(p.E/p.Fy)

		// Local flange buckling stress (E7-5), capped at yield
		fcl := C2Stiffened * math.Pow(lambdaR/lambdaF, 2) * p.Fy
		if fcl > p.Fy {
			fcl = p.Fy
		}

		if lambdaF > lambdaR {
			beFlange = p.Bf * (1 - C1Stiffened*math.Sqrt(fcl/fn)) * math.Sqrt(fcl/fn)
		}
	}

	// Effective web width (E7-3)
	h := p.D - 2*p.Tf
	beWeb := h
	if class.WebFlexure == Slender {
		lambdaW := h / p.Tw
		lambdaR := LambdaRWebSlender * math.Sqrt(p.E/p.Fy)

		// Local web buckling stress (E7-5), capped at yield
		fcl := C2Stiffened * math.Pow(lambdaR/lambdaW, 2) * p.Fy
		if fcl > p.Fy {
			fcl = p.Fy
		}

		if lambdaW > lambdaR {
			beWeb = h * (1 - C1Stiffened*math.Sqrt(fcl/fn)) * math.Sqrt(fcl/fn)
		}
	}

	// Effective area, never exceeding the gross area
	ae := p.A - 2*(p.Bf-beFlange)*p.Tf - (h-beWeb)*p.Tw
	if ae > p.A {
		ae = p.A
	}

	fyMod := p.Fy * (ae / p.A)

	// Re-run the global buckling check with the modified yield stress
	klrX, klrY, klr, fe, err := bucklingStress(p, loads)
	if err != nil {
		return nil, err
	}

	lambdaC := math.Sqrt(fyMod / fe)
	var fcr float64
	var mode BucklingMode
	if klr <= 4.71*math.Sqrt(p.E/fyMod) || lambdaC <= 2.25 {
		fcr = math.Pow(0.658, lambdaC*lambdaC) * fyMod
		mode = BucklingInelastic
	} else {
		fcr = 0.877 * fe
		mode = BucklingElastic
	}

	pn := fcr * ae // E7-1
	pc := PhiCompression * pn
	if pc <= 0 {
		return nil, fmt.Errorf("zero compression capacity: Fcr=%g, Ae=%g", fcr, ae)
	}

	ratio := math.Abs(loads.Pu) / pc

	return &CompressionResult{
		SlendernessX:         klrX,
		SlendernessY:         klrY,
		Slenderness:          klr,
		Fe:                   fe,
		LambdaC:              lambdaC,
		Fcr:                  fcr,
		Pn:                   pn,
		Pc:                   pc,
		Pu:                   math.Abs(loads.Pu),
		Ratio:                ratio,
		Passed:               ratio <= 1.0,
		BucklingMode:         mode,
		SlenderElements:      true,
		EffectiveFlangeWidth: beFlange,
		EffectiveWebWidth:    beWeb,
		EffectiveArea:        ae,
		FyModified:           fyMod,
		Equations:            []string{"E7-1", "E7-2", "E7-3", "E7-5"},
	}, nil
}

// bucklingStress computes the effective slenderness ratios about both axes,
// the governing ratio and the elastic buckling stress Fe (E3-4).
func bucklingStress(p SectionProperties, loads LoadConditions) (klrX, klrY, klr, fe float64, err error) {
	if p.Rx <= 0 || p.Ry <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("degenerate geometry: rx=%g, ry=%g", p.Rx, p.Ry)
	}

	klrX = loads.Lx / p.Rx
	klrY = loads.Ly / p.Ry
	klr = math.Max(klrX, klrY)
	if klr <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("zero slenderness: Lx=%g, Ly=%g", loads.Lx, loads.Ly)
	}

	fe = math.Pi * math.Pi * p.E / (klr * klr)
	return klrX, klrY, klr, fe, nil
}
