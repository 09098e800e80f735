// Package primes implements a Miller-Rabin probabilistic primality oracle
// with a memoised "smallest prime >= n+1" query.
//
// What:
//   - NextPrime(n): returns the smallest odd p >= n+1 for which
//     Miller-Rabin declares p prime. Results are cached by argument.
//   - isProbablePrime(n, stream): the underlying Monte Carlo test.
//
// Why:
//   - khash and onesparse both need a prime modulus derived from a
//     problem size (n, w, or 100*n); recomputing primality on every
//     construction would dominate the cost of building a sketch.
//
// Complexity:
//   - isProbablePrime: O(log(n)^3) per call (witness count is O(log n),
//     each witness does O(log n) modular squarings).
//   - NextPrime: O(log(n)^4) amortised on cache miss, O(1) on hit.
//
// Errors:
//   - None; primes operates on unchecked positive int64 inputs. Callers
//     that need argument validation wrap this package (see khash.Pick).
package primes
