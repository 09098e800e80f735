package l0sampler

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/streamsketch/khash"
	"github.com/katalvlaran/streamsketch/krng"
	"github.com/katalvlaran/streamsketch/sketcherr"
	"github.com/katalvlaran/streamsketch/ssparse"
)

// fixedK is the independence degree baked into the tag hash and the
// sparse degree (s = 2*fixedK) of every per-level ssparse.Sketch. A
// fixed small constant, not tunable per construction.
const fixedK = 4

// tagCodomainPower is the exponent c in the tag hash's codomain n^c.
const tagCodomainPower = 1

// New constructs an L0-sampler for a vector of length n. By default a
// fresh 32-bit seed is drawn and delta defaults to min(1, 1/log2(n)); override
// either with WithSeed / WithDelta.
//
// Construction draws, in this fixed order: the tag hash H, then one
// ssparse.Sketch per level (level 0 first). This order is load-bearing:
// two samplers built with the same seed observe their krng.Stream in
// the same order and therefore share identical coefficients.
func New(n int64, opts ...Option) (*Sketch, error) {
	if n <= 0 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "l0sampler.New", "n=%d must be positive", n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	seed := cfg.seed
	if !cfg.seedSet {
		seed = randomSeed32()
	}

	delta := cfg.delta
	if delta == -1 {
		delta = math.Min(1, 1/math.Log2(float64(n)))
	}
	if delta <= 0 || delta > 1 {
		return nil, sketcherr.Wrapf(ErrInvalidArgument, "l0sampler.New", "delta=%v must be in (0,1]", delta)
	}

	levels := int(math.Ceil(math.Log2(float64(n))))
	if levels < 1 {
		levels = 1
	}
	sparseDegree := 2 * fixedK

	stream := krng.NewStream(seed)

	var tag uint64
	nextStream := func() *krng.Stream {
		tag++

		return stream.Derive(tag)
	}

	tagCodomain := int64(1)
	for p := 0; p < tagCodomainPower; p++ {
		tagCodomain *= n
	}
	tagHash, err := khash.Pick(n, tagCodomain, fixedK, nextStream())
	if err != nil {
		return nil, err
	}

	perLevel := make([]*ssparse.Sketch, levels)
	for l := 0; l < levels; l++ {
		lvl, err := ssparse.New(n, sparseDegree, delta, nextStream())
		if err != nil {
			return nil, err
		}
		perLevel[l] = lvl
	}

	return &Sketch{
		n:            n,
		seed:         seed,
		delta:        delta,
		levels:       levels,
		minTagSelect: cfg.minTagSelect,
		tagHash:      tagHash,
		perLevel:     perLevel,
	}, nil
}

// activeLevelCount returns the number of levels (0..count-1) that
// coordinate i is active at, via a geometric level filter: one more than
// the largest L such that n^c >> L > H(i), capped at levels.
func (s *Sketch) activeLevelCount(i int64) int {
	t := s.tagHash.Eval(i)

	nCopy := int64(1)
	for p := 0; p < tagCodomainPower; p++ {
		nCopy *= s.n
	}

	count := 0
	for nCopy > t && count < s.levels {
		count++
		nCopy >>= 1
	}

	return count
}

// Update applies a[i] += delta to every level this coordinate is active
// at, per the geometric filter.
func (s *Sketch) Update(i int64, delta int64) error {
	if i < 0 || i >= s.n {
		return sketcherr.Wrapf(ErrOutOfRange, "Update", "i=%d n=%d", i, s.n)
	}

	activeLevels := s.activeLevelCount(i)
	for l := 0; l < activeLevels; l++ {
		if err := s.perLevel[l].Update(i, delta); err != nil {
			return err
		}
	}

	return nil
}

// GetSample recovers a single coordinate approximately uniformly from
// the support. The default policy recovers every level
// independently, picks one representative coordinate uniformly at
// random from each successful level's map, then returns one of those
// representatives chosen uniformly at random.
//
// If constructed with WithMinTagSelection, instead returns the
// coordinate with the smallest tag among the first successful level's
// recovered map (the documented alternative policy).
func (s *Sketch) GetSample() (idx int64, val int64, ok bool) {
	if s.minTagSelect {
		return s.getSampleMinTag()
	}

	return s.getSampleUniform()
}

func (s *Sketch) getSampleUniform() (int64, int64, bool) {
	type candidate struct {
		idx, val int64
	}
	var representatives []candidate

	for l := 0; l < s.levels; l++ {
		recovered, ok := s.perLevel[l].Recover()
		if !ok {
			continue
		}

		keys := make([]int64, 0, len(recovered))
		for k := range recovered {
			keys = append(keys, k)
		}
		pick := keys[selectionRNG().Intn(len(keys))]
		representatives = append(representatives, candidate{idx: pick, val: recovered[pick]})
	}

	if len(representatives) == 0 {
		return 0, 0, false
	}

	chosen := representatives[selectionRNG().Intn(len(representatives))]

	return chosen.idx, chosen.val, true
}

func (s *Sketch) getSampleMinTag() (int64, int64, bool) {
	for l := 0; l < s.levels; l++ {
		recovered, ok := s.perLevel[l].Recover()
		if !ok {
			continue
		}

		var (
			bestIdx  int64
			bestVal  int64
			bestTag  int64
			haveBest bool
		)
		for k, v := range recovered {
			t := s.tagHash.Eval(k)
			if !haveBest || t < bestTag {
				bestIdx, bestVal, bestTag, haveBest = k, v, t, true
			}
		}

		return bestIdx, bestVal, true
	}

	return 0, 0, false
}

// GetSamples aggregates, across every level, every coordinate->value
// pair produced by any successful recovery, into one map. Unlike
// GetSample it never fails: an empty map means no level recovered
// anything.
func (s *Sketch) GetSamples() map[int64]int64 {
	result := make(map[int64]int64)

	for l := 0; l < s.levels; l++ {
		recovered, ok := s.perLevel[l].Recover()
		if !ok {
			continue
		}
		for k, v := range recovered {
			result[k] = v
		}
	}

	return result
}

// Add combines other into s, level-wise, after checking that n and
// seed match.
func (s *Sketch) Add(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	for l := 0; l < s.levels; l++ {
		if err := s.perLevel[l].Add(other.perLevel[l]); err != nil {
			return sketcherr.Wrapf(ErrIncompatible, "l0sampler.Add", "level %d: %v", l, err)
		}
	}

	return nil
}

// Subtract combines other into s, level-wise, after checking that n
// and seed match.
func (s *Sketch) Subtract(other *Sketch) error {
	if err := s.checkCompatible(other); err != nil {
		return err
	}

	for l := 0; l < s.levels; l++ {
		if err := s.perLevel[l].Subtract(other.perLevel[l]); err != nil {
			return sketcherr.Wrapf(ErrIncompatible, "l0sampler.Subtract", "level %d: %v", l, err)
		}
	}

	return nil
}

func (s *Sketch) checkCompatible(other *Sketch) error {
	if other == nil {
		return sketcherr.Wrapf(ErrIncompatible, "l0sampler", "other is nil")
	}
	if s.n != other.n {
		return sketcherr.Wrapf(ErrIncompatible, "l0sampler", "n mismatch")
	}
	if s.seed != other.seed {
		return sketcherr.Wrapf(ErrIncompatible, "l0sampler", "samplers not initialized from the same seed")
	}

	return nil
}

// selectionRNG returns a process-wide time-seeded RNG used only for
// GetSample's representative/final selection. It never touches sketch
// state, so it has no bearing on Add/Subtract compatibility.
var selectRNGSource = rand.New(rand.NewSource(time.Now().UnixNano()))

func selectionRNG() *rand.Rand {
	return selectRNGSource
}
