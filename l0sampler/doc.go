// Package l0sampler implements an L0-sampler: a multi-level geometric
// sub-sampling sketch that returns a coordinate drawn approximately
// uniformly from the support of the vector it sketches.
//
// What:
//   - New(n, opts...): builds a tag hash H (4-independent, domain n,
//     codomain n) and `levels = ceil(log2 n)` ssparse.Sketch values,
//     each with sparse degree s = 2*k, k = 4.
//   - Update(i, delta): computes the active level count for i from its
//     tag and applies the update to every active level's ssparse.Sketch.
//   - GetSample(): recovers every level independently; for each
//     successful level, picks one recovered coordinate uniformly at
//     random; returns one of those representatives, chosen uniformly.
//   - GetSamples(): aggregates every successful level's full recovered
//     map into one map.
//
// Why:
//   - The geometric level filter means level l's active support shrinks
//     by roughly 2^l; a successful s-sparse recovery at some level
//     yields a near-uniform sample over the true support with
//     overwhelming probability across levels.
//
// Construction order is load-bearing: two samplers built with the same
// seed observe their internal krng.Stream in the same order (tag hash,
// then level 0..levels-1's ssparse.Sketch), so they draw identical
// coefficients and witnesses -- the precondition for Add/Subtract.
//
// Complexity:
//   - New:    O(levels) ssparse constructions.
//   - Update: O(levels) active-level filter plus O(active levels) ssparse updates.
//   - GetSample/GetSamples: O(levels) ssparse recoveries.
//   - Add/Subtract: O(levels) ssparse combinations.
//
// Errors:
//   - ErrOutOfRange   i not in [0, n-1].
//   - ErrIncompatible Add/Subtract between sketches with mismatched n or seed.
package l0sampler
