package slope

import "math/rand"

// Source supplies uniform random values in [0, 1).
//
// *rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// bipolar draws a value in [-1, 1).
func bipolar(src Source) float64 {
	return src.Float64()*2 - 1
}
