package ssparse

import "github.com/katalvlaran/streamsketch/sketcherr"

var (
	// ErrOutOfRange indicates that an index i is not in [0, n-1].
	ErrOutOfRange = sketcherr.ErrOutOfRange

	// ErrIncompatible indicates Add/Subtract was attempted between
	// sketches with mismatched n, s, delta, p, or row hashes.
	ErrIncompatible = sketcherr.ErrIncompatible

	// ErrInvalidArgument indicates a constructor received n, s <= 0 or
	// delta outside (0, 1].
	ErrInvalidArgument = sketcherr.ErrInvalidArgument
)
