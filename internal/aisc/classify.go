package aisc

import (
	"fmt"
	"math"
)

// Classify determines the compactness of the flange and web per
// Tables B4.1a and B4.1b.
//
// The flange is classified both for uniform compression (Table B4.1a,
// cases 1 and 5) and for flexural compression (Table B4.1b, case 10).
// The web is classified for flexure (Table B4.1b, case 15).
func Classify(p SectionProperties) (Classification, error) {
	if p.Tf <= 0 || p.Tw <= 0 {
		return Classification{}, fmt.Errorf("degenerate geometry: flange thickness=%g, web thickness=%g", p.Tf, p.Tw)
	}

	sqrtEFy := math.Sqrt(p.E / p.Fy)

	ratios := ClassificationRatios{
		LambdaF: p.Bf / (2 * p.Tf),
		LambdaW: (p.D - 2*p.Tf) / p.Tw,

		LambdaPFlangeComp: LambdaPFlangeComp * sqrtEFy,
		LambdaRFlangeComp: LambdaRFlangeComp * sqrtEFy,

		LambdaPFlangeFlex: LambdaPFlangeFlex * sqrtEFy,
		LambdaRFlangeFlex: LambdaRFlangeFlex * sqrtEFy,
		LambdaPWebFlex:    LambdaPWebFlex * sqrtEFy,
		LambdaRWebFlex:    LambdaRWebFlex * sqrtEFy,
	}

	return Classification{
		FlangeCompression: classifyElement(ratios.LambdaF, ratios.LambdaPFlangeComp, ratios.LambdaRFlangeComp),
		FlangeFlexure:     classifyElement(ratios.LambdaF, ratios.LambdaPFlangeFlex, ratios.LambdaRFlangeFlex),
		WebFlexure:        classifyElement(ratios.LambdaW, ratios.LambdaPWebFlex, ratios.LambdaRWebFlex),
		Ratios:            ratios,
	}, nil
}

// classifyElement places a width-thickness ratio in its compactness band.
// Both band boundaries are inclusive on the lower side.
func classifyElement(lambda, lambdaP, lambdaR float64) Compactness {
	switch {
	case lambda <= lambdaP:
		return Compact
	case lambda <= lambdaR:
		return Noncompact
	default:
		return Slender
	}
}
