package tracer

import (
	"math/rand"
)

// Source yields independent uniformly distributed values in [0,1). A
// source is not safe for concurrent use; every worker owns its own
// instance seeded independently so no generator state is ever shared
// between goroutines.
type Source interface {
	Next() float32
}

type randSource struct {
	rnd *rand.Rand
}

// NewSource creates a uniform random source with an explicit seed.
func NewSource(seed int64) Source {
	return &randSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Next() float32 {
	return s.rnd.Float32()
}
