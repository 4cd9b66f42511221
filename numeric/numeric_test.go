package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/numeric"
)

func TestEqualWithin(t *testing.T) {
	require.True(t, numeric.EqualWithin(1.0, 1.0+1e-12, numeric.DefaultEpsilon))
	require.False(t, numeric.EqualWithin(1.0, 1.0+1e-6, numeric.DefaultEpsilon))
}

func TestZeroBand(t *testing.T) {
	require.True(t, numeric.Zero(-1e-12, numeric.DefaultEpsilon))
	require.False(t, numeric.Positive(1e-12, numeric.DefaultEpsilon))
	require.True(t, numeric.Positive(1e-6, numeric.DefaultEpsilon))
	require.True(t, numeric.Negative(-1e-6, numeric.DefaultEpsilon))
	require.False(t, numeric.Negative(-1e-12, numeric.DefaultEpsilon))
}

func TestUnbounded(t *testing.T) {
	require.True(t, numeric.Unbounded(math.Inf(1)))
	require.False(t, numeric.Unbounded(math.Inf(-1)))
	require.False(t, numeric.Unbounded(1e300))
}

func TestClampNonNegative(t *testing.T) {
	require.Equal(t, 0.0, numeric.ClampNonNegative(-1e-12, numeric.DefaultEpsilon))
	require.Equal(t, -1.0, numeric.ClampNonNegative(-1.0, numeric.DefaultEpsilon))
	require.Equal(t, 2.5, numeric.ClampNonNegative(2.5, numeric.DefaultEpsilon))
}
