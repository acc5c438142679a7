package aisc

import (
	"errors"
	"fmt"
)

// Axis identifies the principal bending axis of the member
type Axis string

const (
	StrongAxis Axis = "strong" // major axis (x-x)
	WeakAxis   Axis = "weak"   // minor axis (y-y)
)

// Compactness is the width-thickness classification of a cross-section element
// per Tables B4.1a and B4.1b
type Compactness string

const (
	Compact    Compactness = "compact"
	Noncompact Compactness = "noncompact"
	Slender    Compactness = "slender"
)

// TensionMode identifies the governing tension limit state
type TensionMode string

const (
	TensionYielding TensionMode = "yielding"
	TensionRupture  TensionMode = "rupture"
)

// BucklingMode identifies the governing flexural buckling regime
type BucklingMode string

const (
	BucklingInelastic BucklingMode = "inelastic"
	BucklingElastic   BucklingMode = "elastic"
)

// FlexureLimitState identifies the governing flexural limit state
type FlexureLimitState string

const (
	FlexureYielding     FlexureLimitState = "yielding"
	FlexureLTBInelastic FlexureLimitState = "inelastic LTB"
	FlexureLTBElastic   FlexureLimitState = "elastic LTB"
	FlexureNoncompact   FlexureLimitState = "noncompact flange"
	FlexureLocalBuckle  FlexureLimitState = "flange local buckling"
)

// ErrCompressionRequired is returned by CheckInteraction when no compression
// result is available to combine with the flexure results.
var ErrCompressionRequired = errors.New("interaction check requires a compression result")

// SectionProperties holds the geometric and material properties of a W-shape.
// All values are in consistent metric units (cm, cm², cm³, cm⁴, cm⁶, kgf/cm²).
type SectionProperties struct {
	// Dimensions (cm)
	D  float64 // total depth
	Bf float64 // flange width
	Tf float64 // flange thickness
	Tw float64 // web thickness

	// Areas (cm²)
	A float64 // gross cross-sectional area

	// Strong axis (x-x) properties
	Ix float64 // moment of inertia (cm⁴)
	Sx float64 // elastic section modulus (cm³)
	Zx float64 // plastic section modulus (cm³)
	Rx float64 // radius of gyration (cm)

	// Weak axis (y-y) properties
	Iy float64 // moment of inertia (cm⁴)
	Sy float64 // elastic section modulus (cm³)
	Zy float64 // plastic section modulus (cm³)
	Ry float64 // radius of gyration (cm)
	Ho float64 // distance between flange centroids (cm)

	// Torsional properties
	J  float64 // torsional constant (cm⁴)
	Cw float64 // warping constant (cm⁶)

	// Material (kgf/cm²)
	Fy float64 // yield stress
	Fu float64 // ultimate tensile stress
	E  float64 // modulus of elasticity
}

// Validate checks that all geometric and material values are strictly positive.
func (p SectionProperties) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"d", p.D}, {"bf", p.Bf}, {"tf", p.Tf}, {"tw", p.Tw},
		{"A", p.A}, {"Ix", p.Ix}, {"Sx", p.Sx}, {"Zx", p.Zx}, {"rx", p.Rx},
		{"Iy", p.Iy}, {"Sy", p.Sy}, {"Zy", p.Zy}, {"ry", p.Ry}, {"ho", p.Ho},
		{"J", p.J}, {"Cw", p.Cw},
		{"Fy", p.Fy}, {"Fu", p.Fu}, {"E", p.E},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("section property %s must be positive, got %g", f.name, f.value)
		}
	}
	return nil
}

// LoadConditions holds the applied loads and member lengths for one evaluation.
type LoadConditions struct {
	Pu  float64 // applied axial force (+ tension, - compression)
	Mux float64 // applied moment about the strong axis (kgf-cm)
	Muy float64 // applied moment about the weak axis (kgf-cm)
	L   float64 // unbraced length (cm)
	Lx  float64 // effective length for buckling about the x-axis (cm)
	Ly  float64 // effective length for buckling about the y-axis (cm)
	Lt  float64 // unbraced length for lateral-torsional buckling (cm)
	Cb  float64 // lateral-torsional buckling modification factor
}

// NewLoadConditions creates load conditions with the default Cb = 1.0.
func NewLoadConditions(pu, mux, muy, l, lx, ly, lt float64) LoadConditions {
	return LoadConditions{
		Pu:  pu,
		Mux: mux,
		Muy: muy,
		L:   l,
		Lx:  lx,
		Ly:  ly,
		Lt:  lt,
		Cb:  1.0,
	}
}

// ClassificationRatios holds the width-thickness ratios and the limits
// they were compared against.
type ClassificationRatios struct {
	LambdaF float64 // flange ratio bf/(2tf)
	LambdaW float64 // web ratio (d-2tf)/tw

	// Table B4.1a limits (compression)
	LambdaPFlangeComp float64
	LambdaRFlangeComp float64

	// Table B4.1b limits (flexure)
	LambdaPFlangeFlex float64
	LambdaRFlangeFlex float64
	LambdaPWebFlex    float64
	LambdaRWebFlex    float64
}

// Classification is the compactness classification of the controlling elements.
type Classification struct {
	FlangeCompression Compactness // flange under uniform compression
	FlangeFlexure     Compactness // flange under flexural compression
	WebFlexure        Compactness // web under flexure
	Ratios            ClassificationRatios
}

// TensionResult holds the outcome of the Chapter D tension check.
type TensionResult struct {
	PnYielding float64 // nominal yielding capacity (D2-1)
	PtYielding float64 // design yielding capacity
	PnRupture  float64 // nominal rupture capacity (D2-2)
	PtRupture  float64 // design rupture capacity
	Pt         float64 // governing design capacity

	Pu    float64 // applied axial tension
	Ratio float64 // demand/capacity ratio

	Passed        bool
	GoverningMode TensionMode
	Equations     []string
}

// CompressionResult holds the outcome of the Chapter E compression check.
type CompressionResult struct {
	SlendernessX float64 // KL/r about the x-axis
	SlendernessY float64 // KL/r about the y-axis
	Slenderness  float64 // governing KL/r

	Fe      float64 // elastic buckling stress (E3-4)
	LambdaC float64
	Fcr     float64 // critical stress
	Pn      float64 // nominal capacity
	Pc      float64 // design capacity

	Pu    float64 // applied axial compression (absolute)
	Ratio float64 // demand/capacity ratio

	Passed       bool
	BucklingMode BucklingMode

	// Slender-element path only (Section E7)
	SlenderElements      bool
	EffectiveFlangeWidth float64 // be for the flange (cm)
	EffectiveWebWidth    float64 // be for the web (cm)
	EffectiveArea        float64 // Ae (cm²)
	FyModified           float64 // Fy scaled by Ae/Ag

	Equations []string
}

// FlexureResult holds the outcome of the Chapter F flexure check for one axis.
type FlexureResult struct {
	Axis Axis

	// Strong axis only: lateral-torsional buckling parameters
	Lp  float64 // plastic-moment unbraced length limit (F2-5)
	Lr  float64 // inelastic unbraced length limit (F2-6)
	Lt  float64 // unbraced length used for LTB
	Rts float64 // effective radius of gyration

	Mn float64 // nominal moment capacity (kgf-cm)
	Mb float64 // design moment capacity (kgf-cm)

	Mu    float64 // applied moment
	Ratio float64 // demand/capacity ratio

	Passed      bool
	LimitState  FlexureLimitState
	FlangeClass Compactness
	Equations   []string
}

// InteractionResult holds the outcome of the Chapter H combined-load check.
type InteractionResult struct {
	Value    float64 // combined interaction value
	Equation string  // "H1-1a" or "H1-1b"

	PrPc   float64 // axial demand/capacity
	MrxMcx float64 // strong-axis moment demand/capacity
	MryMcy float64 // weak-axis moment demand/capacity

	Pr  float64
	Pc  float64
	Mrx float64
	Mcx float64
	Mry float64
	Mcy float64

	Passed    bool
	Equations []string
}

// AggregateResult collects the outcomes of all applicable checks.
// A nil slot means the corresponding check was not applicable for the
// given loads, not that it failed.
type AggregateResult struct {
	Classification *Classification
	Tension        *TensionResult
	Compression    *CompressionResult
	FlexureStrong  *FlexureResult
	FlexureWeak    *FlexureResult
	Interaction    *InteractionResult
}

// Passed reports whether every applicable check passed.
func (r *AggregateResult) Passed() bool {
	if r.Tension != nil && !r.Tension.Passed {
		return false
	}
	if r.Compression != nil && !r.Compression.Passed {
		return false
	}
	if r.FlexureStrong != nil && !r.FlexureStrong.Passed {
		return false
	}
	if r.FlexureWeak != nil && !r.FlexureWeak.Passed {
		return false
	}
	if r.Interaction != nil && !r.Interaction.Passed {
		return false
	}
	return true
}
