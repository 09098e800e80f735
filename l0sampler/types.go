package l0sampler

import (
	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/ssparse"
)

// Sketch is a multi-level L0-sampler over a conceptual integer vector a
// of length n. seed is stored so another sampler can regenerate
// identical random parameters and so Add/Subtract can check compatibility.
type Sketch struct {
	n            int64
	seed         int64
	delta        float64
	levels       int
	minTagSelect bool
	tagHash      *khash.Hash
	perLevel     []*ssparse.Sketch
}

// N returns the vector length this sampler was constructed for.
func (s *Sketch) N() int64 { return s.n }

// Seed returns the seed used to construct this sampler.
func (s *Sketch) Seed() int64 { return s.seed }

// Levels returns the number of geometric sub-sampling levels.
func (s *Sketch) Levels() int { return s.levels }
