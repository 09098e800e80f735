package ssparse

import (
	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/onesparse"
)

// Sketch is an s-sparse recovery table: a rows x columns grid of
// onesparse.Sketch cells, one row-wise 2-independent hash per row.
//
// All cells share a single prime p (stored for compatibility checks)
// but carry independent 1-sparse witnesses z, since each onesparse.New
// call draws its own.
type Sketch struct {
	n       int64
	s       int
	delta   float64
	columns int
	rows    int
	p       int64
	rowHash []*khash.Hash
	grid    [][]*onesparse.Sketch // grid[row][column]
}

// N returns the vector length this sketch was constructed for.
func (s *Sketch) N() int64 { return s.n }

// S returns the sparsity bound s this sketch was constructed for.
func (s *Sketch) S() int { return s.s }

// Delta returns the failure-probability bound delta.
func (s *Sketch) Delta() float64 { return s.delta }

// Rows returns the number of hash rows.
func (s *Sketch) Rows() int { return s.rows }

// Columns returns the number of columns per row.
func (s *Sketch) Columns() int { return s.columns }
