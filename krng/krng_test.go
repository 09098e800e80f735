package krng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/streamsketch/krng"
)

func TestNewStream_Deterministic(t *testing.T) {
	s1 := krng.NewStream(42)
	s2 := krng.NewStream(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, s1.Int63(), s2.Int63())
	}
}

func TestDerive_SameTagSameSeed_Identical(t *testing.T) {
	s1 := krng.NewStream(7).Derive(3)
	s2 := krng.NewStream(7).Derive(3)

	assert.Equal(t, s1.Seed(), s2.Seed())
	assert.Equal(t, s1.Int63(), s2.Int63())
}

func TestDerive_DifferentTag_Diverges(t *testing.T) {
	base := krng.NewStream(7)
	a := base.Derive(1)
	b := base.Derive(2)

	assert.NotEqual(t, a.Seed(), b.Seed())
}

func TestSeed_DerivedChildHasOwnSeed(t *testing.T) {
	s := krng.NewStream(99)
	assert.Equal(t, int64(99), s.Seed())

	child := s.Derive(5)
	assert.NotEqual(t, int64(99), child.Seed())
}

func TestInt63n_Range(t *testing.T) {
	s := krng.NewStream(1)
	for i := 0; i < 100; i++ {
		v := s.Int63n(17)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(17))
	}
}
