package random

import (
	"math/rand/v2"
	"sync"
)

// Source implements domain.RandomSource.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source backed by the process-wide generator.
func New() *Source {
	return &Source{}
}

// NewSeeded returns a reproducible source.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	if s.rng == nil {
		return rand.IntN(n) //nolint:gosec // car allocation is not security sensitive
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
