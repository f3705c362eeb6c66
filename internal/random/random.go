// Package random provides the injectable random source used by the ball.
package random

import (
	"math/rand/v2"
	"time"
)

// Source produces the random draws needed by serves and bounces.
type Source interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// Sign returns -1 or +1 with equal probability.
	Sign() float64
}

// PCG is a Source backed by a seeded PCG generator.
// It is not safe for concurrent use; each match owns its own.
type PCG struct {
	rng *rand.Rand
}

// NewSource creates a deterministic Source for the given seed.
// A zero seed is replaced with one derived from the clock.
func NewSource(seed uint64) *PCG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PCG{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a value in [lo, hi).
func (p *PCG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*p.rng.Float64()
}

// Sign returns -1 or +1.
func (p *PCG) Sign() float64 {
	if p.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Sequence replays a fixed list of unit values in [0, 1).
// Uniform maps the next value into [lo, hi); Sign maps it to -1 below 0.5 and
// +1 otherwise. The list wraps around when exhausted.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over values. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) draw() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Uniform returns the next value scaled into [lo, hi).
func (s *Sequence) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.draw()
}

// Sign returns -1 or +1 depending on the next value.
func (s *Sequence) Sign() float64 {
	if s.draw() < 0.5 {
		return -1
	}
	return 1
}

var (
	_ Source = (*PCG)(nil)
	_ Source = (*Sequence)(nil)
)
