package material

import (
	"math/rand"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
)

// seededSampler returns a deterministic sampler for tests
func seededSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// scriptedSampler replays a fixed sequence of values, cycling when
// exhausted. Used to force specific stochastic branches.
type scriptedSampler struct {
	values []float64
	next   int
}

func (s *scriptedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
