package ssparse

import (
	"math"

	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/onesparse"
	"github.com/katalvlaran/streamsketch/sketcherr"
)

// New constructs an s-sparse recoverer for a vector of length n with
// sparsity bound s and failure probability bound delta.
// columns = 2*s; rows = max(1, ceil(ln(s/delta))).
//
// Random parameters (row hashes, cell witnesses) are drawn from stream
// in a fixed order: row 0's hash, then row 0's columns' witnesses left
// to right, then row 1's hash, and so on. Two Sketches built from
// streams with the same seed therefore share identical coefficients.
func New(n int64, s int, delta float64, stream *krng.Stream) (*Sketch, error) {
	if n <= 0 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "ssparse.New", "n=%d must be positive", n)
	}
	if s <= 0 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "ssparse.New", "s=%d must be positive", s)
	}
	if delta <= 0 || delta > 1 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "ssparse.New", "delta=%v must be in (0,1]", delta)
	}

	columns := 2 * s
	rows := int(math.Ceil(math.Log(float64(s) / delta)))
	if rows < 1 {
		rows = 1
	}

	sk := &Sketch{
		n:       n,
		s:       s,
		delta:   delta,
		columns: columns,
		rows:    rows,
		rowHash: make([]*khash.Hash, rows),
		grid:    make([][]*onesparse.Sketch, rows),
	}

	var tag uint64
	nextStream := func() *krng.Stream {
		tag++

		return stream.Derive(tag)
	}

	for r := 0; r < rows; r++ {
		h, err := khash.Pick(n, int64(columns), 2, nextStream())
		if err != nil {
			return nil, err
		}
		sk.rowHash[r] = h

		sk.grid[r] = make([]*onesparse.Sketch, columns)
		for c := 0; c < columns; c++ {
			cell, err := onesparse.New(n, nextStream())
			if err != nil {
				return nil, err
			}
			sk.grid[r][c] = cell
			sk.p = cell.P()
		}
	}

	return sk, nil
}

// Update applies a[i] += delta to the sketch: for each row, hashes i to
// a column and updates that cell.
func (s *Sketch) Update(i int64, delta int64) error {
	if i < 0 || i >= s.n {
		return sketcherr.Wrapf(ErrOutOfRange, "Update", "i=%d n=%d", i, s.n)
	}

	for r := 0; r < s.rows; r++ {
		col := s.rowHash[r].Eval(i)
		if err := s.grid[r][col].Update(i, delta); err != nil {
			return err
		}
	}

	return nil
}

// Recover iterates every cell, attempts 1-sparse recovery, and merges
// successes into a map keyed by coordinate (later cells overwrite
// earlier ones for the same coordinate, which is safe since true
// coordinates recover to the same value from every cell they land in).
//
// Returns (nil, false) if no cell recovered anything. Does not filter
// by map size.
func (s *Sketch) Recover() (map[int64]int64, bool) {
	result := make(map[int64]int64)

	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.columns; c++ {
			idx, val, ok := s.grid[r][c].Recover()
			if ok {
				result[idx] = val
			}
		}
	}

	if len(result) == 0 {
		return nil, false
	}

	return result, true
}

// Add combines other into s, cell-wise, after checking that n, s,
// delta, p, and the row hashes match.
func (s *Sketch) Add(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.columns; c++ {
			if err := s.grid[r][c].Add(other.grid[r][c]); err != nil {
				return sketcherr.Wrapf(ErrIncompatible, "ssparse.Add", "cell (%d,%d): %v", r, c, err)
			}
		}
	}

	return nil
}

// Subtract combines other into s, cell-wise, after checking that n, s,
// delta, p, and the row hashes match.
func (s *Sketch) Subtract(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.columns; c++ {
			if err := s.grid[r][c].Subtract(other.grid[r][c]); err != nil {
				return sketcherr.Wrapf(ErrIncompatible, "ssparse.Subtract", "cell (%d,%d): %v", r, c, err)
			}
		}
	}

	return nil
}

func (s *Sketch) checkCompatible(other *Sketch) error {
	if other == nil {
		return sketcherr.Wrapf(ErrIncompatible, "ssparse", "other is nil")
	}
	if s.n != other.n || s.s != other.s || s.delta != other.delta || s.p != other.p {
		return sketcherr.Wrapf(ErrIncompatible, "ssparse", "n/s/delta/p mismatch")
	}
	if s.rows != other.rows || s.columns != other.columns {
		return sketcherr.Wrapf(ErrIncompatible, "ssparse", "rows/columns mismatch")
	}
	for r := 0; r < s.rows; r++ {
		if !s.rowHash[r].Equal(other.rowHash[r]) {
			return sketcherr.Wrapf(ErrIncompatible, "ssparse", "row %d hash mismatch", r)
		}
	}

	return nil
}
