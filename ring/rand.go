package ring

import (
	"math/rand/v2"
)

// Rand is the random source consumed by generators
// *rand.Rand from math/rand/v2 satisfies it; a Rand must not be shared across concurrent Generate calls
type Rand interface {
	Float64() float64
	NormFloat64() float64
}

// pcgStream decorrelates the second PCG word from the seed
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic PCG-backed source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// SubSeeds derives n independent seeds from seed, one per concurrent generation call
func SubSeeds(seed uint64, n int) []uint64 {
	if n <= 0 {
		return nil
	}
	src := NewRand(seed)
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = src.Uint64()
	}
	return seeds
}
