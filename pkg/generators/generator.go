// Package generators produces synthetic inputs, either randomly from a
// randomness capability or deterministically as dummy placeholders.
package generators

import (
	"errors"

	"fortio.org/safecast"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

// DummyBytesMax caps the length of dummy inputs
const DummyBytesMax = 64

// Sentinel errors for generator configuration
var (
	ErrInvalidMaxSize   = errors.New("invalid max size: must be at least 1 to generate")
	ErrUnknownGenerator = errors.New("unknown generator")
)

// Generator produces inputs of type I using randomness capability R.
type Generator[I any, R rands.Rand] interface {
	// Generate draws a new input from r. It fails only on invalid
	// configuration or when r itself fails; errors from r are returned unchanged.
	Generate(r R) (I, error)

	// GenerateDummy returns a deterministic placeholder without consulting
	// any randomness. It never fails.
	GenerateDummy() I
}

// drawSize samples a length in [0, maxSize) and bumps zero to one.
// Length 1 is therefore twice as likely as any other length.
func drawSize(r rands.Rand, maxSize int) (int, error) {
	if maxSize < 1 {
		return 0, ErrInvalidMaxSize
	}
	bound, err := safecast.Conv[uint64](maxSize)
	if err != nil {
		return 0, ErrInvalidMaxSize
	}
	n, err := rands.Draw(r, bound)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		n = 1
	}
	// n < bound, which came from an int
	size, err := safecast.Conv[int](n)
	if err != nil {
		return 0, rands.ErrInvalidDraw
	}
	return size, nil
}

// dummyBytes returns min(maxSize, DummyBytesMax) zero bytes
func dummyBytes(maxSize int) []byte {
	return make([]byte, max(0, min(maxSize, DummyBytesMax)))
}
