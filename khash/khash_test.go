package khash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/krng"
)

func TestPick_RangeProperty(t *testing.T) {
	stream := krng.NewStream(1)
	h, err := khash.Pick(1000, 37, 3, stream)
	require.NoError(t, err)

	for x := int64(0); x < 5000; x += 7 {
		v := h.Eval(x)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(37))
	}
}

func TestPick_Deterministic(t *testing.T) {
	h1, err := khash.Pick(100, 16, 2, krng.NewStream(42))
	require.NoError(t, err)
	h2, err := khash.Pick(100, 16, 2, krng.NewStream(42))
	require.NoError(t, err)

	assert.True(t, h1.Equal(h2))
	for x := int64(0); x < 200; x++ {
		assert.Equal(t, h1.Eval(x), h2.Eval(x))
	}
}

func TestPick_InvalidArguments(t *testing.T) {
	stream := krng.NewStream(1)

	_, err := khash.Pick(0, 10, 2, stream)
	assert.ErrorIs(t, err, khash.ErrInvalidArgument)

	_, err = khash.Pick(10, 0, 2, stream)
	assert.ErrorIs(t, err, khash.ErrInvalidArgument)

	_, err = khash.Pick(10, 10, 0, stream)
	assert.ErrorIs(t, err, khash.ErrInvalidArgument)
}

func TestEqual_DifferentDraws(t *testing.T) {
	h1, err := khash.Pick(100, 16, 2, krng.NewStream(1))
	require.NoError(t, err)
	h2, err := khash.Pick(100, 16, 2, krng.NewStream(2))
	require.NoError(t, err)

	assert.False(t, h1.Equal(h2))
}

func TestEval_HandlesLargeX(t *testing.T) {
	h, err := khash.Pick(10, 8, 4, krng.NewStream(3))
	require.NoError(t, err)

	v := h.Eval(1 << 40)
	assert.GreaterOrEqual(t, v, int64(0))
	assert.Less(t, v, int64(8))
}
