// Package sketcherr centralizes the three sentinel error categories used
// across the streaming-sketch core: out-of-range indices, invalid
// constructor arguments, and incompatible linear combination. Recovery
// failure is deliberately not modelled here — it is an expected outcome,
// returned as a value, not an error.
package sketcherr
