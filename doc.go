// Package streamsketch is a library of linear streaming sketches for
// integer-valued vectors updated by a stream of additive operations
// a[i] += delta.
//
// What is streamsketch?
//
//	A small, zero-service, pure-Go library that brings together:
//
//	  - 1-sparse recovery: exactly recover the single non-zero
//	    coordinate of a vector, or detect that it isn't 1-sparse.
//	  - s-sparse recovery: recover the full support of a vector known
//	    to have at most s non-zero coordinates.
//	  - L0-sampling: draw a coordinate approximately uniformly from a
//	    vector's support, without ever materializing the vector.
//
// All three sketch types are linear: two sketches of the same vector
// length, built from the same seed, can be added or subtracted
// coordinate-wise to yield a sketch of the sum or difference vector.
// This is the property that makes them composable across shards,
// across time windows, or across a distributed stream.
//
// Under the hood, everything is organized as one package per component:
//
//	primes/     -- Miller-Rabin primality oracle with a memoised cache
//	krng/       -- explicit, derivable seeded random streams
//	khash/      -- k-independent polynomial hash family
//	onesparse/  -- the 1-sparse recovery fingerprint
//	ssparse/    -- the s-sparse recovery table
//	l0sampler/  -- the multi-level L0-sampler
//	sketcherr/  -- the shared sentinel error vocabulary
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// rationale and the grounding behind each package.
//
//	go get github.com/katalvlaran/streamsketch
package streamsketch
