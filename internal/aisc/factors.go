package aisc

// AISC 360 Design Constants (LRFD)

const (
	// Resistance factors
	// Chapter D (tension), Chapter E (compression), Chapter F (flexure)
	PhiTensionYielding = 0.90 // Section D2(a)
	PhiTensionRupture  = 0.75 // Section D2(b)
	PhiCompression     = 0.90 // Section E1
	PhiFlexure         = 0.90 // Section F1

	// Effective width imperfection factors for stiffened elements
	// other than walls of square and rectangular HSS
	// Table E7.1, case (c)
	C1Stiffened = 0.22
	C2Stiffened = 1.49

	// Width-thickness limit coefficients, Table B4.1a (compression)
	LambdaPFlangeComp = 0.56 // Case 1
	LambdaRFlangeComp = 1.49 // Case 5

	// Width-thickness limit coefficients, Table B4.1b (flexure)
	LambdaPFlangeFlex = 0.38 // Case 10
	LambdaRFlangeFlex = 1.0  // Case 10
	LambdaPWebFlex    = 3.76 // Case 15
	LambdaRWebFlex    = 5.70 // Case 15

	// Slender-element local buckling limit coefficients, Section E7
	LambdaRFlangeSlender = 1.03
	LambdaRWebSlender    = 5.70

	// Default material properties (kgf/cm²) for ASTM A992 steel
	DefaultFy = 3515.0
	DefaultFu = 4570.0
	DefaultE  = 2038902.0
)
