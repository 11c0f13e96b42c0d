package seed

import "math/rand"

// Source is the narrow surface the sampler and renderer draw from. Keeping
// it this small lets an alternate backend replace math/rand as long as it
// reproduces the same draw semantics bit-for-bit.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Shuffle permutes n elements via the swap callback.
	Shuffle(n int, swap func(i, j int))
}

type randSource struct {
	r *rand.Rand
}

// NewSource builds a deterministic Source from a derived seed.
func NewSource(value uint32) Source {
	return &randSource{r: rand.New(rand.NewSource(int64(value)))}
}

// SourceFor derives the salted seed for (name, timeline, salt) and returns a
// fresh source positioned at the start of its stream.
func SourceFor(name, timeline, salt string) Source {
	return NewSource(DeriveSalted(name, timeline, salt))
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

func (s *randSource) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
