package onesparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/onesparse"
)

func newSketch(t *testing.T, n int64, seed int64) *onesparse.Sketch {
	t.Helper()
	s, err := onesparse.New(n, krng.NewStream(seed))
	require.NoError(t, err)

	return s
}

// updates [(42,7),(42,-3)] on n=100, recover -> (42,4).
func TestRecover_E1_SingleCoordinateWithCancellation(t *testing.T) {
	s := newSketch(t, 100, 1)
	require.NoError(t, s.Update(42, 7))
	require.NoError(t, s.Update(42, -3))

	idx, val, ok := s.Recover()
	assert.True(t, ok)
	assert.Equal(t, int64(42), idx)
	assert.Equal(t, int64(4), val)
}

func TestRecover_1SparseExactness(t *testing.T) {
	for _, n := range []int64{1, 2, 10, 1000} {
		for _, idx := range []int64{0, n - 1} {
			s := newSketch(t, n, 7)
			require.NoError(t, s.Update(idx, 5))

			gotIdx, gotVal, ok := s.Recover()
			assert.True(t, ok, "n=%d idx=%d", n, idx)
			assert.Equal(t, idx, gotIdx)
			assert.Equal(t, int64(5), gotVal)
		}
	}
}

func TestRecover_ZeroVectorFails(t *testing.T) {
	s := newSketch(t, 100, 1)
	require.NoError(t, s.Update(10, 5))
	require.NoError(t, s.Update(10, -5))

	_, _, ok := s.Recover()
	assert.False(t, ok)
}

// Two non-zero coordinates of equal value are likely to fail recovery.
func TestRecover_E2_TwoSparseFailsWithHighProbability(t *testing.T) {
	failures := 0
	trials := 20
	for trial := 0; trial < trials; trial++ {
		s := newSketch(t, 100, int64(trial))
		require.NoError(t, s.Update(10, 5))
		require.NoError(t, s.Update(20, 5))

		if _, _, ok := s.Recover(); !ok {
			failures++
		}
	}
	assert.GreaterOrEqual(t, failures, trials-1, "expected Recover to fail on almost every trial")
}

func TestRecover_Idempotent(t *testing.T) {
	s := newSketch(t, 100, 3)
	require.NoError(t, s.Update(5, 9))

	idx1, val1, ok1 := s.Recover()
	idx2, val2, ok2 := s.Recover()
	assert.Equal(t, idx1, idx2)
	assert.Equal(t, val1, val2)
	assert.Equal(t, ok1, ok2)
}

func TestUpdate_OutOfRange(t *testing.T) {
	s := newSketch(t, 10, 1)
	assert.ErrorIs(t, s.Update(-1, 1), onesparse.ErrOutOfRange)
	assert.ErrorIs(t, s.Update(10, 1), onesparse.ErrOutOfRange)
}

func TestAddSubtract_Linearity(t *testing.T) {
	s1 := newSketch(t, 100, 55)
	s2 := newSketch(t, 100, 55)

	require.NoError(t, s1.Update(17, 3))
	require.NoError(t, s2.Update(17, 4))

	require.NoError(t, s1.Add(s2))
	idx, val, ok := s1.Recover()
	assert.True(t, ok)
	assert.Equal(t, int64(17), idx)
	assert.Equal(t, int64(7), val)

	require.NoError(t, s1.Subtract(s2))
	idx, val, ok = s1.Recover()
	assert.True(t, ok)
	assert.Equal(t, int64(17), idx)
	assert.Equal(t, int64(3), val)
}

func TestAdd_IncompatibleSketches(t *testing.T) {
	s1 := newSketch(t, 100, 1)
	s2 := newSketch(t, 100, 2) // different seed -> different z

	assert.ErrorIs(t, s1.Add(s2), onesparse.ErrIncompatible)
}

func TestAdd_DifferentN(t *testing.T) {
	s1 := newSketch(t, 100, 1)
	s2 := newSketch(t, 200, 1)

	assert.ErrorIs(t, s1.Add(s2), onesparse.ErrIncompatible)
}

func TestNew_InvalidN(t *testing.T) {
	_, err := onesparse.New(0, krng.NewStream(1))
	assert.ErrorIs(t, err, onesparse.ErrInvalidArgument)
}

func TestUpdate_LargeIotaUsesBigInt(t *testing.T) {
	s := newSketch(t, 1_000_000, 1)
	require.NoError(t, s.Update(999_999, 1<<62))

	idx, val, ok := s.Recover()
	assert.True(t, ok)
	assert.Equal(t, int64(999_999), idx)
	assert.Equal(t, int64(1<<62), val)
}
