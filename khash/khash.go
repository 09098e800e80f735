package khash

import (
	"fmt"

	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/primes"
	"github.com/katalvlaran/streamsketch/sketcherr"
)

// Hash is a value-type k-independent polynomial hash
// h(x) = (sum_{j=0}^{k-1} a_j * x^j mod p) mod w.
//
// It is immutable after construction: coefficients, p, and w never
// change, which is what makes Equal a sound basis for the Add/Subtract
// compatibility check on the sketches built from it.
type Hash struct {
	p    int64
	w    int64
	k    int
	coef []int64 // a_0 .. a_{k-1}, len == k
}

// Pick draws a Hash uniformly at random from the family of k-independent
// polynomials mapping {0..n-1} -> {0..w-1}, using stream for every random
// draw (in coefficient order a_0, a_1, ..., a_{k-1}).
//
// p = NextPrime(max(n, w)). Each a_j is uniform in [0, p-1], except the
// leading coefficient a_{k-1}, constrained to [1, p-1] to preserve
// degree k-1.
func Pick(n, w int64, k int, stream *krng.Stream) (*Hash, error) {
	if n <= 0 || w <= 0 {
		return nil, sketcherr.Wrapf(sketcherr.ErrInvalidArgument, "khash.Pick", "n=%d w=%d must be positive", n, w)
	}
	if k <= 0 {
		return nil, sketcherr.Wrapf(sketcherr.ErrInvalidArgument, "khash.Pick", "k=%d must be positive", k)
	}

	bound := n
	if w > bound {
		bound = w
	}
	p := primes.Default().NextPrime(bound)

	coef := make([]int64, k)
	for j := 0; j < k; j++ {
		if j == k-1 {
			coef[j] = 1 + stream.Int63n(p-1) // a_{k-1} in [1, p-1]
		} else {
			coef[j] = stream.Int63n(p) // a_j in [0, p-1]
		}
	}

	return &Hash{p: p, w: w, k: k, coef: coef}, nil
}

// Eval returns h(x) for any integer x >= 0 (arbitrary non-negative
// integers are safe: the mod-p reduction collapses them into the field).
//
// Uses Horner-style accumulation with a mod reduction after every
// multiply-add, so no intermediate value approaches overflow for the
// magnitudes this library is documented to support.
func (h *Hash) Eval(x int64) int64 {
	xr := x % h.p
	if xr < 0 {
		xr += h.p
	}

	res := int64(0)
	for j := h.k - 1; j >= 0; j-- {
		res = (mulModSmall(res, xr, h.p) + h.coef[j]) % h.p
	}

	return res % h.w
}

// Equal reports whether h and other were drawn with identical prime
// modulus, codomain, independence degree, and coefficients — the structural
// equality required for linear combination compatibility.
func (h *Hash) Equal(other *Hash) bool {
	if other == nil {
		return false
	}
	if h.p != other.p || h.w != other.w || h.k != other.k {
		return false
	}
	if len(h.coef) != len(other.coef) {
		return false
	}
	for i := range h.coef {
		if h.coef[i] != other.coef[i] {
			return false
		}
	}

	return true
}

// String renders the hash's structural parameters for diagnostics.
func (h *Hash) String() string {
	return fmt.Sprintf("khash.Hash{p=%d w=%d k=%d}", h.p, h.w, h.k)
}

// mulModSmall returns (a*b) mod m using math/big internally to avoid
// int64 overflow on the multiply, mirroring primes.mulMod.
func mulModSmall(a, b, m int64) int64 {
	return bigMulMod(a, b, m)
}
