// Package krng provides an explicit, derivable seeded random stream.
//
// krng.Stream threads an explicit value through construction instead of
// reseeding a global generator before every draw: two Streams built
// from the same seed, consumed in the same order, draw identical
// values, with no dependence on any process-wide state. Substreams are
// derived with a SplitMix64-style seed mixer, so a parent stream can
// hand out any number of independent children without consuming its
// own state in an order-sensitive way.
package krng

import "math/rand"

// Stream is a deterministic source of randomness with an identity (its
// original seed) usable for compatibility checks, plus a derivation
// operation for creating independent substreams without consuming the
// parent's state in an order-sensitive way.
type Stream struct {
	seed int64
	rng  *rand.Rand
}

// NewStream returns a Stream seeded deterministically from seed.
func NewStream(seed int64) *Stream {
	return &Stream{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this stream was constructed with. For a derived
// stream this is the mixed seed computed by Derive, not the parent's
// seed. It is the identity used by callers to decide whether two
// sketches were built compatibly.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Derive returns an independent child stream, mixing this stream's seed
// with tag via a SplitMix64-style finalizer. Calling Derive repeatedly
// with distinct tags in a fixed, documented order is how callers build
// multiple independent sub-streams (one per hash row, one per level, ...)
// while keeping two same-seeded constructions bit-for-bit identical.
func (s *Stream) Derive(tag uint64) *Stream {
	mixed := deriveSeed(s.seed, tag)

	return &Stream{seed: mixed, rng: rand.New(rand.NewSource(mixed))}
}

// Int63 returns a non-negative pseudo-random 63-bit integer from the
// stream's state.
func (s *Stream) Int63() int64 {
	return s.rng.Int63()
}

// Int63n returns, as an int64, a non-negative pseudo-random number in
// [0, n). It panics if n <= 0, matching math/rand.Rand.Int63n.
func (s *Stream) Int63n(n int64) int64 {
	return s.rng.Int63n(n)
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 multipliers/finalizer (Vigna
// 2014). Adapted verbatim from lvlath/tsp/rng.go's deriveSeed.
func deriveSeed(parent int64, tag uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (tag + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
