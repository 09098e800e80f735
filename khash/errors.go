package khash

import "github.com/katalvlaran/streamsketch/sketcherr"

// Errors returned by Pick. Re-exported from sketcherr so callers can
// errors.Is against either this package or sketcherr directly.
var (
	ErrInvalidArgument = sketcherr.ErrInvalidArgument
)
