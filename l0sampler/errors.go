package l0sampler

import "github.com/katalvlaran/streamsketch/sketcherr"

var (
	// ErrOutOfRange indicates that an index i is not in [0, n-1].
	ErrOutOfRange = sketcherr.ErrOutOfRange

	// ErrIncompatible indicates Add/Subtract was attempted between
	// sketches with mismatched n or seed.
	ErrIncompatible = sketcherr.ErrIncompatible

	// ErrInvalidArgument indicates a constructor received n <= 0 or an
	// out-of-range delta option.
	ErrInvalidArgument = sketcherr.ErrInvalidArgument
)
