package onesparse

import "math/big"

// Sketch is a 1-sparse recovery fingerprint over a conceptual integer
// vector a of length n, all zero at construction.
//
// z is an immutable random witness drawn once at construction from
// Z_p, p >= 100*n. It never changes after New returns.
//
// iota, phi, and tau are the three mutable counters:
//
//	iota = sum((i+1) * a[i])   -- arbitrary precision, may exceed int64
//	phi  = sum(a[i])           -- arbitrary precision, may exceed int64
//	tau  = sum(a[i] * z^(i+1)) mod p
//
// The (i+1) offset distinguishes index 0 from an untouched bucket.
type Sketch struct {
	n    int64
	p    int64
	z    int64
	iota *big.Int
	phi  *big.Int
	tau  int64
}

// N returns the vector length this sketch was constructed for.
func (s *Sketch) N() int64 { return s.n }

// P returns the prime modulus underlying tau. Two sketches must share
// the same p (and z) to be compatible for Add/Subtract.
func (s *Sketch) P() int64 { return s.p }

// Z returns the random witness drawn at construction.
func (s *Sketch) Z() int64 { return s.z }
