package generators

import (
	"fortio.org/safecast"
	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

var _ Generator[*inputs.BytesInput, rands.Rand] = RandBytesGenerator[rands.Rand]{}

// RandBytesGenerator generates inputs of arbitrary bytes
type RandBytesGenerator[R rands.Rand] struct {
	maxSize int
}

// NewRandBytesGenerator returns a generator producing up to maxSize-1 random bytes
func NewRandBytesGenerator[R rands.Rand](maxSize int) RandBytesGenerator[R] {
	return RandBytesGenerator[R]{maxSize: maxSize}
}

// Generate returns between 1 and maxSize-1 uniformly random bytes
func (g RandBytesGenerator[R]) Generate(r R) (*inputs.BytesInput, error) {
	size, err := drawSize(r, g.maxSize)
	if err != nil {
		return nil, err
	}

	data := make([]byte, size)
	for i := range data {
		v, err := rands.Draw(r, 256)
		if err != nil {
			return nil, err
		}
		b, err := safecast.Conv[byte](v)
		if err != nil {
			return nil, rands.ErrInvalidDraw
		}
		data[i] = b
	}
	return inputs.NewBytesInput(data), nil
}

// GenerateDummy returns up to DummyBytesMax zero bytes
func (g RandBytesGenerator[R]) GenerateDummy() *inputs.BytesInput {
	return inputs.NewBytesInput(dummyBytes(g.maxSize))
}
