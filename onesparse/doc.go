// Package onesparse implements exact 1-sparse recovery.
//
// What:
//   - A fixed-size sketch of an integer vector a of length n, updated by
//     a[i] += delta. If a has exactly one non-zero coordinate, Recover
//     returns it exactly. Otherwise Recover fails with probability at
//     least 1 - n/p.
//   - Maintains three counters over a random witness z in [1, p-1]:
//     iota = sum((i+1)*a[i]), phi = sum(a[i]),
//     tau = sum(a[i]*z^(i+1)) mod p.
//
// Why:
//   - It is the atomic cell of ssparse's grid and, transitively, of
//     l0sampler's levels: every higher sketch in this module reduces to
//     many independent instances of this one.
//
// Key types:
//   - Sketch: the fingerprint state (n, p, z, iota, phi, tau).
//
// Complexity:
//   - New:     O(1) plus one NextPrime call (amortised O(1) once cached).
//   - Update:  O(log p) for the modular exponentiation inside tau.
//   - Recover: O(log p).
//   - Add/Subtract: O(1).
//
// Errors:
//   - ErrOutOfRange   i not in [0, n-1].
//   - ErrIncompatible Add/Subtract between sketches with mismatched n,
//     p, or z.
package onesparse
