package onesparse

import (
	"math/big"

	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/primes"
	"github.com/katalvlaran/streamsketch/sketcherr"
)

// New constructs a 1-sparse recoverer for a vector of length n, drawing
// its witness z from stream. p = NextPrime(100*n), large enough that a
// random z collides with the true fingerprint only with vanishing
// probability.
func New(n int64, stream *krng.Stream) (*Sketch, error) {
	if n <= 0 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "onesparse.New", "n=%d must be positive", n)
	}

	p := primes.Default().NextPrime(100 * n)
	z := 1 + stream.Int63n(p-1) // z in [1, p-1]

	return &Sketch{
		n:    n,
		p:    p,
		z:    z,
		iota: new(big.Int),
		phi:  new(big.Int),
		tau:  0,
	}, nil
}

// Update applies a[i] += delta to the sketch.
func (s *Sketch) Update(i int64, delta int64) error {
	if i < 0 || i >= s.n {
		return sketcherr.Wrapf(ErrOutOfRange, "Update", "i=%d n=%d", i, s.n)
	}
	if delta == 0 {
		return nil
	}

	// iota += (i+1) * delta
	term := new(big.Int).Mul(big.NewInt(i+1), big.NewInt(delta))
	s.iota.Add(s.iota, term)

	// phi += delta
	s.phi.Add(s.phi, big.NewInt(delta))

	// tau = (tau + delta * z^(i+1)) mod p
	zPow := modPowBig(s.z, i+1, s.p)
	contribution := new(big.Int).Mul(big.NewInt(delta), zPow)
	acc := new(big.Int).Add(big.NewInt(s.tau), contribution)
	acc.Mod(acc, big.NewInt(s.p))
	s.tau = acc.Int64()

	return nil
}

// Recover attempts to recover the single non-zero coordinate, checking
// four conditions:
//  1. phi != 0
//  2. iota mod phi == 0
//  3. q := iota / phi > 0
//  4. tau == (phi * z^q) mod p
//
// On success returns (idx, val, true) with idx = q-1, val = phi.
// Otherwise returns (0, 0, false). Does not mutate observable state.
func (s *Sketch) Recover() (idx int64, val int64, ok bool) {
	if s.phi.Sign() == 0 {
		return 0, 0, false
	}

	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(s.iota, s.phi, rem)
	if rem.Sign() != 0 {
		return 0, 0, false
	}
	if q.Sign() <= 0 {
		return 0, 0, false
	}

	p := big.NewInt(s.p)
	phiModP := new(big.Int).Mod(s.phi, p)
	zPowQ := new(big.Int).Exp(big.NewInt(s.z), q, p)
	expected := new(big.Int).Mul(phiModP, zPowQ)
	expected.Mod(expected, p)

	if expected.Int64() != s.tau {
		return 0, 0, false
	}

	if !q.IsInt64() || !s.phi.IsInt64() {
		return 0, 0, false
	}

	return q.Int64() - 1, s.phi.Int64(), true
}

// Add combines other into s by coordinate-wise addition of the three
// counters, reducing tau mod p. Requires matching n, p, and z.
func (s *Sketch) Add(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	s.iota.Add(s.iota, other.iota)
	s.phi.Add(s.phi, other.phi)
	s.tau = (s.tau + other.tau) % s.p

	return nil
}

// Subtract combines other into s by coordinate-wise subtraction of the
// three counters, reducing tau mod p. Requires matching n, p, and z.
func (s *Sketch) Subtract(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	s.iota.Sub(s.iota, other.iota)
	s.phi.Sub(s.phi, other.phi)
	acc := new(big.Int).Sub(big.NewInt(s.tau), big.NewInt(other.tau))
	acc.Mod(acc, big.NewInt(s.p))
	s.tau = acc.Int64()

	return nil
}

func (s *Sketch) checkCompatible(other *Sketch) error {
	if other == nil {
		return sketcherr.Wrapf(ErrIncompatible, "onesparse", "other is nil")
	}
	if s.n != other.n || s.p != other.p || s.z != other.z {
		return sketcherr.Wrapf(ErrIncompatible, "onesparse", "n/p/z mismatch")
	}

	return nil
}

// modPowBig returns base^exp mod m as a *big.Int, exp and base given as
// plain int64 (exp is a small per-index exponent, i+1, so it always fits
// in int64 even though the multiplication against delta would not).
func modPowBig(base, exp, m int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), big.NewInt(m))
}
