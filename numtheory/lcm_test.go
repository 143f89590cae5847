package numtheory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairsum/numtheory"
)

func TestLCM_KnownValues(t *testing.T) {
	assert.Equal(t, 2, numtheory.LCM(1, 2))
	assert.Equal(t, 3, numtheory.LCM(1, 3))
	assert.Equal(t, 6, numtheory.LCM(2, 3))
	assert.Equal(t, 12, numtheory.LCM(4, 6))
	assert.Equal(t, 999000, numtheory.LCM(999, 1000))
	assert.Equal(t, 12, numtheory.LCM(-4, 6), "signed inputs yield a non-negative multiple")
	assert.Equal(t, 0, numtheory.LCM(0, 9))
	assert.Equal(t, 0, numtheory.LCM(9, 0))
}

func TestLCM_Commutative(t *testing.T) {
	for a := 1; a <= 60; a++ {
		for b := 1; b <= 60; b++ {
			require.Equalf(t, numtheory.LCM(a, b), numtheory.LCM(b, a), "a=%d b=%d", a, b)
		}
	}
}

// TestLCM_DivisibleByBoth checks the multiple property and minimality.
func TestLCM_DivisibleByBoth(t *testing.T) {
	for a := 1; a <= 40; a++ {
		for b := 1; b <= 40; b++ {
			l := numtheory.LCM(a, b)
			require.Zero(t, l%a)
			require.Zero(t, l%b)
			for m := max(a, b); m < l; m++ {
				require.Falsef(t, m%a == 0 && m%b == 0, "smaller multiple %d for (%d,%d)", m, a, b)
			}
		}
	}
}

func TestCheckedLCM(t *testing.T) {
	l, err := numtheory.CheckedLCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(12), l)

	_, err = numtheory.CheckedLCM(math.MaxInt64, math.MaxInt64-1)
	assert.ErrorIs(t, err, numtheory.ErrOverflow)

	_, err = numtheory.CheckedLCM(0, 5)
	assert.ErrorIs(t, err, numtheory.ErrNonPositive)

	// Shared factors keep the result in range even for large operands.
	l, err = numtheory.CheckedLCM(math.MaxInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), l)
}

func TestAddChecked(t *testing.T) {
	s, err := numtheory.AddChecked(3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s)

	s, err = numtheory.AddChecked(math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), s)

	_, err = numtheory.AddChecked(math.MaxInt64, 1)
	assert.ErrorIs(t, err, numtheory.ErrOverflow)

	_, err = numtheory.AddChecked(math.MinInt64, -1)
	assert.ErrorIs(t, err, numtheory.ErrOverflow)
}
