package utils

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness the loadout rolls draw from. *rand.Rand from
// math/rand/v2 satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG source seeded with seed, or with the clock when seed
// is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|0x9e3779b9)) //nolint:gosec // Game logic randomness, not security critical
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// WeightedIndex picks an index with probability proportional to its weight
// out of total, where total may exceed the sum of weights. It returns -1 when
// the roll lands in the excess, or when nothing has weight.
func WeightedIndex(r Rand, weights []int, total int) int {
	if total <= 0 {
		return -1
	}
	roll := r.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return -1
}
