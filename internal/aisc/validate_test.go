package aisc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePureTension(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(100000, 0, 0, 0, 0, 0, 0)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	require.NotNil(t, res.Classification)
	require.NotNil(t, res.Tension)
	assert.Nil(t, res.Compression)
	assert.Nil(t, res.FlexureStrong)
	assert.Nil(t, res.FlexureWeak)
	assert.Nil(t, res.Interaction)

	assert.True(t, res.Passed())
}

func TestValidateCompressionWithBiaxialBending(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(-100000, 5e6, 1e6, 640, 640, 640, 640)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	assert.Nil(t, res.Tension)
	require.NotNil(t, res.Compression)
	require.NotNil(t, res.FlexureStrong)
	require.NotNil(t, res.FlexureWeak)
	require.NotNil(t, res.Interaction)

	// The interaction check combines the individual capacities
	assert.Equal(t, res.Compression.Pc, res.Interaction.Pc)
	assert.Equal(t, res.FlexureStrong.Mb, res.Interaction.Mcx)
	assert.Equal(t, res.FlexureWeak.Mb, res.Interaction.Mcy)
}

func TestValidateTensionWithBendingHasNoInteraction(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(100000, 5e6, 0, 640, 640, 640, 640)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	require.NotNil(t, res.Tension)
	require.NotNil(t, res.FlexureStrong)
	assert.Nil(t, res.Compression)
	assert.Nil(t, res.Interaction)
}

func TestValidateBendingOnly(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(0, 5e6, 0, 640, 640, 640, 640)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	assert.Nil(t, res.Tension)
	assert.Nil(t, res.Compression)
	require.NotNil(t, res.FlexureStrong)
	assert.Nil(t, res.FlexureWeak)
	assert.Nil(t, res.Interaction)
}

func TestValidateNoLoads(t *testing.T) {
	p := testSection()
	loads := NewLoadConditions(0, 0, 0, 0, 0, 0, 0)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	require.NotNil(t, res.Classification)
	assert.Nil(t, res.Tension)
	assert.Nil(t, res.Compression)
	assert.Nil(t, res.FlexureStrong)
	assert.Nil(t, res.FlexureWeak)
	assert.Nil(t, res.Interaction)
	assert.True(t, res.Passed())
}

func TestValidateRejectsInvalidProperties(t *testing.T) {
	p := testSection()
	p.A = -1
	loads := NewLoadConditions(100000, 0, 0, 0, 0, 0, 0)

	_, err := Validate(p, loads)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestValidateFailingMember(t *testing.T) {
	p := testSection()
	// Demand far beyond any plausible capacity
	loads := NewLoadConditions(-1e9, 1e12, 0, 640, 640, 640, 640)

	res, err := Validate(p, loads)
	require.NoError(t, err)

	assert.False(t, res.Compression.Passed)
	assert.False(t, res.FlexureStrong.Passed)
	assert.False(t, res.Interaction.Passed)
	assert.False(t, res.Passed())
}

func TestNewLoadConditionsDefaultsCb(t *testing.T) {
	loads := NewLoadConditions(0, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, 1.0, loads.Cb)
}
