// SPDX-License-Identifier: MIT
// options.go — functional options for the l0sampler package.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs that
//     can only ever indicate a programmer error (a delta outside (0,1]);
//     the sketch construction itself never panics.
//   - Determinism is explicit: WithSeed controls it, nothing reseeds a
//     global RNG.
package l0sampler

import "math/rand"

// Option customizes the behavior of New by mutating a config before
// construction begins.
type Option func(*config)

// config holds the resolved construction parameters for New.
type config struct {
	delta        float64 // -1 sentinel means "unset, default at New time"
	seed         int64
	seedSet      bool
	minTagSelect bool
}

// defaultConfig returns a config with delta unset (resolved against n
// in New) and no seed yet drawn.
func defaultConfig() *config {
	return &config{delta: -1, seedSet: false}
}

// WithDelta overrides the sampler's failure-probability bound delta.
// Panics if delta is not in (0, 1]; option constructors validate
// eagerly so construction itself never needs to.
func WithDelta(delta float64) Option {
	if delta <= 0 || delta > 1 {
		panic("l0sampler: WithDelta(delta) must be in (0,1]")
	}

	return func(c *config) {
		c.delta = delta
	}
}

// WithSeed fixes the sampler's random seed. Two samplers built with
// WithSeed(sameValue) for the same n draw identical hash coefficients
// and 1-sparse witnesses, which is the precondition for Add/Subtract.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithMinTagSelection switches GetSample to an alternative selection
// policy: it returns the coordinate with the smallest tag among the
// first successful level's recovered map, instead of the default
// "uniform among representatives from every successful level" policy.
func WithMinTagSelection() Option {
	return func(c *config) {
		c.minTagSelect = true
	}
}

// randomSeed32 draws a fresh 32-bit seed, used when the caller does
// not supply WithSeed.
func randomSeed32() int64 {
	return int64(rand.Uint32())
}
