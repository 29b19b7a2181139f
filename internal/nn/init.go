package nn

import (
	"math"
	"math/rand/v2"
)

// newRand returns rng, or a randomly seeded generator when rng is nil.
func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Xavier (Glorot) initialization.
//
// Returns n values drawn from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
// This keeps activation variance roughly constant across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut, n int) []float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	data := make([]float64, n)
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return data
}

// Uniform returns n values drawn from U[0, 1).
func Uniform(rng *rand.Rand, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()
	}
	return data
}
