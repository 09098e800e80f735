// SPDX-License-Identifier: MIT
// Package sketcherr defines the sentinel error vocabulary shared by every
// streaming-sketch package (primes, khash, onesparse, ssparse, l0sampler).
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations SHOULD attach context using fmt.Errorf("%s: %w", ...).
//
// Recovery failure (the sketch could not commit to a result) is never one
// of these: it is reported as a distinguished return value (an "ok bool" or
// a nil map), not an error. These sentinels are reserved for programmer
// errors: out-of-range indices, malformed arguments, and incompatible
// linear combination.
package sketcherr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index i is not in [0, n-1].
	ErrOutOfRange = errors.New("sketch: index out of range")

	// ErrIncompatible is returned when Add/Subtract is attempted between
	// sketches whose structural parameters (n, p, hash coefficients, 1-sparse
	// witnesses, seed) do not match.
	ErrIncompatible = errors.New("sketch: incompatible sketches")

	// ErrInvalidArgument is returned when a constructor receives a
	// semantically invalid argument (n <= 0, s <= 0, delta outside (0,1], k <= 0, ...).
	ErrInvalidArgument = errors.New("sketch: invalid argument")
)

// Wrapf prefixes a sentinel with method context, the way lvlath's
// builderErrorf prefixes a method name onto an inner message. It keeps the
// sentinel matchable via errors.Is while adding a deterministic location.
func Wrapf(sentinel error, method string, format string, args ...interface{}) error {
	return &wrapped{method: method, msg: sprintf(format, args...), err: sentinel}
}

type wrapped struct {
	method string
	msg    string
	err    error
}

func (w *wrapped) Error() string {
	if w.msg == "" {
		return w.method + ": " + w.err.Error()
	}

	return w.method + ": " + w.msg + ": " + w.err.Error()
}

func (w *wrapped) Unwrap() error { return w.err }

func sprintf(format string, args ...interface{}) string {
	if format == "" {
		return ""
	}

	return fmt.Sprintf(format, args...)
}
