package aisc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyElementBands(t *testing.T) {
	const lambdaP, lambdaR = 10.0, 25.0

	tests := []struct {
		name   string
		lambda float64
		want   Compactness
	}{
		{"well below compact limit", 5.0, Compact},
		{"at compact limit", 10.0, Compact},
		{"just above compact limit", 10.001, Noncompact},
		{"between limits", 18.0, Noncompact},
		{"at slender limit", 25.0, Noncompact},
		{"just above slender limit", 25.001, Slender},
		{"well above slender limit", 60.0, Slender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyElement(tt.lambda, lambdaP, lambdaR))
		})
	}
}

func TestClassifyCompactSection(t *testing.T) {
	p := testSection()

	class, err := Classify(p)
	require.NoError(t, err)

	assert.Equal(t, Compact, class.FlangeCompression)
	assert.Equal(t, Compact, class.FlangeFlexure)
	assert.Equal(t, Compact, class.WebFlexure)

	sqrtEFy := math.Sqrt(p.E / p.Fy)
	assert.InEpsilon(t, p.Bf/(2*p.Tf), class.Ratios.LambdaF, 1e-12)
	assert.InEpsilon(t, (p.D-2*p.Tf)/p.Tw, class.Ratios.LambdaW, 1e-12)
	assert.InEpsilon(t, 0.56*sqrtEFy, class.Ratios.LambdaPFlangeComp, 1e-12)
	assert.InEpsilon(t, 1.49*sqrtEFy, class.Ratios.LambdaRFlangeComp, 1e-12)
	assert.InEpsilon(t, 0.38*sqrtEFy, class.Ratios.LambdaPFlangeFlex, 1e-12)
	assert.InEpsilon(t, 1.0*sqrtEFy, class.Ratios.LambdaRFlangeFlex, 1e-12)
	assert.InEpsilon(t, 3.76*sqrtEFy, class.Ratios.LambdaPWebFlex, 1e-12)
	assert.InEpsilon(t, 5.70*sqrtEFy, class.Ratios.LambdaRWebFlex, 1e-12)
}

func TestClassifyNoncompactFlange(t *testing.T) {
	p := testSection()
	// λp for flexure is 0.38√(E/Fy) ≈ 9.15 while λp for compression is
	// 0.56√(E/Fy) ≈ 13.49; a ratio between them splits the two cases
	p.Tf = 1.2 // λf = 12.7

	class, err := Classify(p)
	require.NoError(t, err)

	assert.Equal(t, Compact, class.FlangeCompression)
	assert.Equal(t, Noncompact, class.FlangeFlexure)
}

func TestClassifySlenderFlange(t *testing.T) {
	p := testSection()
	p.Tf = 0.4 // λf ≈ 38.1, above both λr limits

	class, err := Classify(p)
	require.NoError(t, err)

	assert.Equal(t, Slender, class.FlangeCompression)
	assert.Equal(t, Slender, class.FlangeFlexure)
}

func TestClassifySlenderWeb(t *testing.T) {
	p := testSection()
	p.Tw = 0.6 // λw ≈ 142.4, above λr web ≈ 137.3

	class, err := Classify(p)
	require.NoError(t, err)

	assert.Equal(t, Slender, class.WebFlexure)
}

func TestClassifyInclusiveLowerBoundaries(t *testing.T) {
	p := testSection()

	// Construct a flange whose ratio equals the flexure compact limit
	// exactly: bf = 2·tf·λp keeps the ratio bit-identical to the limit.
	lambdaP := 0.38 * math.Sqrt(p.E/p.Fy)
	p.Tf = 1.0
	p.Bf = 2 * p.Tf * lambdaP

	class, err := Classify(p)
	require.NoError(t, err)
	assert.Equal(t, Compact, class.FlangeFlexure, "ratio equal to λp must classify compact")

	// Same for the noncompact upper boundary
	lambdaR := 1.0 * math.Sqrt(p.E/p.Fy)
	p.Bf = 2 * p.Tf * lambdaR

	class, err = Classify(p)
	require.NoError(t, err)
	assert.Equal(t, Noncompact, class.FlangeFlexure, "ratio equal to λr must classify noncompact")
}

func TestClassifyDegenerateGeometry(t *testing.T) {
	p := testSection()
	p.Tf = 0

	_, err := Classify(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate geometry")

	p = testSection()
	p.Tw = 0

	_, err = Classify(p)
	require.Error(t, err)
}
