// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the onesparse package.
//
// Error policy: only sentinels are exposed; callers branch with
// errors.Is. Sentinels are re-exported from sketcherr so every package
// in this module shares one vocabulary, the way lvlath's per-package
// errors.go files each wrap a shared sentinel style.
package onesparse

import "github.com/katalvlaran/streamsketch/sketcherr"

var (
	// ErrOutOfRange indicates that an index i is not in [0, n-1].
	ErrOutOfRange = sketcherr.ErrOutOfRange

	// ErrIncompatible indicates Add/Subtract was attempted between
	// sketches with mismatched n, p, or z.
	ErrIncompatible = sketcherr.ErrIncompatible

	// ErrInvalidArgument indicates a constructor received n <= 0.
	ErrInvalidArgument = sketcherr.ErrInvalidArgument
)
