package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness every simulation step draws from.
// Implementations need not be safe for concurrent use.
type Source interface {
	// Int returns a uniform integer in [min, max], inclusive on both ends.
	Int(min, max int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Rand is the default Source backed by a PCG generator.
type Rand struct {
	r *rand.Rand
}

// New returns a Source seeded for reproducible runs.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() *Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Int returns a uniform integer in [min, max]. Swapped bounds are tolerated.
func (s *Rand) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (s *Rand) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a uniform float in [min, max).
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Chance reports whether a roll lands under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element, or the zero value for an empty slice.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Int(0, len(items)-1)]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Int(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
