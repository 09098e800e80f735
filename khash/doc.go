// Package khash builds k-independent polynomial hash functions over a
// prime field.
//
// What:
//   - Pick(n, w, k, stream): draws h(x) = (a_0 + a_1*x + ... +
//     a_{k-1}*x^(k-1)) mod p mod w uniformly from the family of such
//     polynomials over Z_p, p = NextPrime(max(n, w)), with the leading
//     coefficient constrained to [1, p-1] to preserve degree.
//   - Hash.Eval(x): evaluates h at x via Horner's rule, reducing mod p
//     after every multiply-add so large x never overflows.
//
// Why:
//   - ssparse uses 2-independent hashes to map indices to columns.
//   - l0sampler uses a 4-independent "tag" hash to assign each index a
//     pseudo-random rank used for geometric level sub-sampling.
//
// Hash is a value type with an Eval operation rather than a closure, so
// its coefficients can be compared for equality (the basis of the
// Add/Subtract compatibility check in callers) without inspecting a
// captured environment.
//
// Complexity: Eval is O(k) per call. Pick is O(k) plus one NextPrime call.
package khash
