// Package ssparse implements s-sparse recovery: a rows x columns table
// of onesparse recoverers with one row-wise 2-independent hash per row.
//
// What:
//   - New(n, s, delta, stream): columns = 2*s, rows = ceil(ln(s/delta))
//     (at least 1), one 2-independent hash per row mapping {0..n-1} to
//     {0..columns-1}, and a rows x columns grid of onesparse.Sketch
//     cells sharing the prime p but each with an independent witness z.
//   - Update(i, delta): for each row, hash i to a column and update that
//     cell.
//   - Recover(): attempt 1-sparse recovery on every cell; merge
//     successes into a map keyed by coordinate, overwriting duplicates.
//     Returns the map unfiltered by size -- this package does not
//     discard recoveries larger than s.
//
// Why:
//   - If the underlying vector has at most s non-zero coordinates, with
//     probability >= 1 - delta each of them lands alone in some row's
//     column, so every true coordinate appears in the merged map.
//
// Complexity:
//   - New:     O(rows) hash picks.
//   - Update:  O(rows) row hashes plus O(rows) onesparse updates.
//   - Recover: O(rows*columns) onesparse recoveries.
//   - Add/Subtract: O(rows*columns).
//
// Errors:
//   - ErrOutOfRange   i not in [0, n-1].
//   - ErrIncompatible Add/Subtract between sketches with mismatched
//     n, s, delta, p, or row hashes.
package ssparse
