package primes

import (
	"math/big"
	"math/bits"
	"sync"

	"github.com/katalvlaran/streamsketch/krng"
)

// Oracle is a memoised Miller-Rabin primality tester. Its cache is
// process-wide-shareable but not global: callers construct one (or
// reuse Default()) explicitly, as an ordinary value rather than a
// hidden singleton, while still supporting grow-only sharing across
// goroutines.
type Oracle struct {
	mu    sync.RWMutex
	cache map[int64]int64
}

// NewOracle returns an empty, ready-to-use Oracle.
func NewOracle() *Oracle {
	return &Oracle{cache: make(map[int64]int64)}
}

var defaultOracle = NewOracle()

// Default returns the package-wide shared Oracle. Sharing it across
// unrelated constructions only grows its cache; it is never invalidated.
func Default() *Oracle {
	return defaultOracle
}

// NextPrime returns the smallest odd p >= n+1 for which Miller-Rabin
// declares p prime, memoised by n.
func (o *Oracle) NextPrime(n int64) int64 {
	o.mu.RLock()
	if p, ok := o.cache[n]; ok {
		o.mu.RUnlock()

		return p
	}
	o.mu.RUnlock()

	p := n + 1
	if p%2 == 0 {
		p++
	}
	stream := krng.NewStream(n ^ 0x5bd1e995)
	for !isProbablePrime(p, stream) {
		p += 2
	}

	o.mu.Lock()
	o.cache[n] = p
	o.mu.Unlock()

	return p
}

// IsProbablePrime runs Miller-Rabin on n using witnesses drawn from
// stream. False-positive probability is at most 1/n^2. Exposed directly
// (rather than only through NextPrime) so callers can primality-test an
// already-known candidate without going through the cache.
func (o *Oracle) IsProbablePrime(n int64, stream *krng.Stream) bool {
	return isProbablePrime(n, stream)
}

// isProbablePrime runs Miller-Rabin on n using witnesses drawn from
// stream. False-positive probability is at most 1/n^2.
func isProbablePrime(n int64, stream *krng.Stream) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}

	d := n - 1
	r := 0
	for d%2 == 0 {
		r++
		d >>= 1
	}

	witnesses := witnessCount(n)
	for w := 0; w < witnesses; w++ {
		a := int64(2)
		if n > 4 {
			a = 2 + stream.Int63n(n-3) // a in [2, n-2]
		}

		x := modPow(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
			if x == 1 {
				return false
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// witnessCount returns the number of Miller-Rabin witnesses to draw,
// at least ceil(log2(n)).
func witnessCount(n int64) int {
	k := bits.Len64(uint64(n))
	if k < 1 {
		k = 1
	}

	return k
}

// mulMod returns (a*b) mod m without overflowing int64, using big.Int.
func mulMod(a, b, m int64) int64 {
	var ba, bb, bm big.Int
	ba.SetInt64(a)
	bb.SetInt64(b)
	bm.SetInt64(m)
	ba.Mul(&ba, &bb)
	ba.Mod(&ba, &bm)

	return ba.Int64()
}

// modPow returns base^exp mod m via big.Int's fast exponentiation.
func modPow(base, exp, m int64) int64 {
	var bb, be, bm big.Int
	bb.SetInt64(base)
	be.SetInt64(exp)
	bm.SetInt64(m)
	bb.Exp(&bb, &be, &bm)

	return bb.Int64()
}
