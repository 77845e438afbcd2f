package generators

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

// BytesGenerator is a byte-input generator usable with any Rand
type BytesGenerator = Generator[*inputs.BytesInput, rands.Rand]

// Factory builds a generator for the given max size
type Factory func(maxSize int) BytesGenerator

type entry struct {
	factory     Factory
	description string
}

// registry maps generator names to their factories
var registry = map[string]entry{
	"bytes": {
		factory:     func(maxSize int) BytesGenerator { return NewRandBytesGenerator[rands.Rand](maxSize) },
		description: "Uniformly random bytes (0x00-0xff)",
	},
	"printables": {
		factory:     func(maxSize int) BytesGenerator { return NewRandPrintablesGenerator[rands.Rand](maxSize) },
		description: "Printable ASCII: letters, digits, whitespace, punctuation",
	},
}

// Get returns a generator by name
func Get(name string, maxSize int) (BytesGenerator, error) {
	e, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return e.factory(maxSize), nil
}

// Describe returns a human-readable description of a generator
func Describe(name string) (string, error) {
	e, exists := registry[name]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return e.description, nil
}

// List returns all available generator names, sorted
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
