// Package rng holds the randomness and time capabilities injected into the
// engine. Shuffling, random selection and id generation all route through
// Rand; log and stat timestamps route through Clock. A fixed-seed Rand makes
// every run reproducible.
package rng

import (
	"math/rand"
	"time"
)

// Rand produces floats in [0, 1).
type Rand interface {
	NextFloat() float64
}

// Clock produces millisecond timestamps.
type Clock interface {
	Now() int64
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Rand backed by math/rand with the given seed.
func NewSeeded(seed int64) Rand {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) NextFloat() float64 { return s.r.Float64() }

// SystemClock reports wall-clock time in milliseconds.
type SystemClock struct{}

func (SystemClock) Now() int64 { return time.Now().UnixMilli() }

// FixedClock always reports the same instant. Test helper.
type FixedClock int64

func (c FixedClock) Now() int64 { return int64(c) }

// Sequence replays a fixed list of floats, cycling when exhausted. Test
// helper for pinning individual random decisions.
type Sequence struct {
	Values []float64
	i      int
}

func (s *Sequence) NextFloat() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.i%len(s.Values)]
	s.i++
	return v
}
