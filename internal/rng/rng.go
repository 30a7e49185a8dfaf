// Package rng provides the seeded random source every generator draws from.
// All entropy used during level generation flows through a single Source so
// that a seed reproduces the same dungeon.
package rng

import (
	"hash/fnv"
	"math/rand"
)

// Source is a deterministic pseudo-random stream.
// It is not safe for concurrent use; generation is single-threaded.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a source from a numeric seed.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// NewFromString creates a source from a textual game seed such as "test-dungeon-seed".
// The string is hashed with FNV-1a so equal strings always give equal streams.
func NewFromString(seed string) *Source {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return New(int64(h.Sum64()))
}

// Seed returns the numeric seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Next returns a uniform float in [0, 1).
func (s *Source) Next() float64 {
	return s.r.Float64()
}

// NextInt returns a uniform integer in [min, max], both inclusive.
// If max < min the bounds are swapped.
func (s *Source) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(s.Next()*float64(max-min+1))
}

// Intn returns a uniform integer in [0, n). Returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.NextInt(0, n-1)
}

// Chance reports true with probability p. p <= 0 never succeeds, p >= 1 always does,
// but a value is drawn either way so the stream position does not depend on p.
func (s *Source) Chance(p float64) bool {
	return s.Next() < p
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](s *Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.NextInt(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

// Pick returns a uniformly chosen element. ok is false for an empty slice,
// in which case nothing is drawn.
func Pick[T any](s *Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[s.Intn(len(items))], true
}

// WeightedIndex picks an index proportional to weights. Non-positive weights are never
// chosen. Returns -1 when no weight is positive (nothing is drawn in that case).
func (s *Source) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	roll := s.Next() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if roll < w {
			return i
		}
		roll -= w
	}
	return last
}
