package rands

import "errors"

// Sentinel errors for random source failures
var (
	ErrInvalidBound = errors.New("invalid bound: must be greater than zero")
	ErrInvalidDraw  = errors.New("random source returned a value outside the requested range")
	ErrExhausted    = errors.New("random source exhausted")
	ErrEmptySet     = errors.New("cannot choose from an empty set")
)

// Rand is the randomness capability consumed by generators.
// Implementations are not required to be safe for concurrent use; callers
// running several goroutines should give each one its own Rand.
type Rand interface {
	// Below returns a uniformly distributed value in [0, bound).
	Below(bound uint64) (uint64, error)
}

// Draw calls r.Below and verifies the result actually lies in [0, bound).
// Errors raised by r are returned unchanged.
func Draw(r Rand, bound uint64) (uint64, error) {
	v, err := r.Below(bound)
	if err != nil {
		return 0, err
	}
	if v >= bound {
		return 0, ErrInvalidDraw
	}
	return v, nil
}

// Choose returns one element of set, selected uniformly at random.
func Choose[T any](r Rand, set []T) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, ErrEmptySet
	}
	i, err := Draw(r, uint64(len(set)))
	if err != nil {
		return zero, err
	}
	return set[i], nil
}
