package rands

import "math/rand/v2"

// pcgIncrement is mixed into the seed to form the second PCG word.
const pcgIncrement = 0xda3e39cb94b95bdb

// StdRand implements Rand on top of a seeded math/rand/v2 PCG source.
// Two StdRands built from the same seed produce the same sequence.
// StdRand is not safe for concurrent use.
type StdRand struct {
	rng *rand.Rand
}

// NewStdRand creates a StdRand seeded with seed
func NewStdRand(seed uint64) *StdRand {
	return &StdRand{rng: rand.New(rand.NewPCG(seed, seed^pcgIncrement))}
}

// Below returns a uniform value in [0, bound)
func (s *StdRand) Below(bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, ErrInvalidBound
	}
	return s.rng.Uint64N(bound), nil
}
