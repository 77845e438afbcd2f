package generators

import (
	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

// Printables is the alphabet RandPrintablesGenerator samples from
var Printables = []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz \t\n!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")

var _ Generator[*inputs.BytesInput, rands.Rand] = RandPrintablesGenerator[rands.Rand]{}

// RandPrintablesGenerator generates inputs of printable characters
type RandPrintablesGenerator[R rands.Rand] struct {
	maxSize int
}

// NewRandPrintablesGenerator returns a generator producing up to maxSize-1 printable characters
func NewRandPrintablesGenerator[R rands.Rand](maxSize int) RandPrintablesGenerator[R] {
	return RandPrintablesGenerator[R]{maxSize: maxSize}
}

// Generate returns between 1 and maxSize-1 characters drawn from Printables
func (g RandPrintablesGenerator[R]) Generate(r R) (*inputs.BytesInput, error) {
	size, err := drawSize(r, g.maxSize)
	if err != nil {
		return nil, err
	}

	data := make([]byte, size)
	for i := range data {
		c, err := rands.Choose(r, Printables)
		if err != nil {
			return nil, err
		}
		data[i] = c
	}
	return inputs.NewBytesInput(data), nil
}

// GenerateDummy returns up to DummyBytesMax zero bytes.
// Zero is not in Printables, so dummies are distinguishable from real samples.
func (g RandPrintablesGenerator[R]) GenerateDummy() *inputs.BytesInput {
	return inputs.NewBytesInput(dummyBytes(g.maxSize))
}
