package catalog

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"w8x10", "W8X10", "W8x10"} {
		p, err := Get(name)
		require.NoError(t, err, name)
		assert.Greater(t, p.A, 0.0)
	}
}

func TestGetKnownProperties(t *testing.T) {
	p, err := Get("w44x335")
	require.NoError(t, err)

	assert.Equal(t, 114.05, p.D)
	assert.Equal(t, 40.16, p.Bf)
	assert.Equal(t, 642.58, p.A)
	assert.Equal(t, 3515.0, p.Fy)
	assert.Equal(t, 4570.0, p.Fu)
	assert.Equal(t, 2038902.0, p.E)
}

func TestGetNotFound(t *testing.T) {
	_, err := Get("w99x999")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "w99x999", notFound.Name)
	assert.Contains(t, err.Error(), "w99x999")
}

func TestListAll(t *testing.T) {
	names := List("")
	assert.Greater(t, len(names), 100)
	assert.Contains(t, names, "w8x10")
	assert.True(t, sort.StringsAreSorted(names))
}

func TestListBySeries(t *testing.T) {
	names := List("W8")
	require.NotEmpty(t, names)
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "w8"), name)
	}

	assert.Empty(t, List("W99"))
}

func TestAllShapesValidate(t *testing.T) {
	for name, p := range shapes {
		assert.NoError(t, p.Validate(), name)
	}
}
