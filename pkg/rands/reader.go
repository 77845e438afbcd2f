package rands

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ReaderRand implements Rand by consuming raw entropy from an io.Reader,
// typically crypto/rand.Reader. Each sample reads 8 bytes; values in the
// biased tail are rejected and redrawn.
type ReaderRand struct {
	r   io.Reader
	buf [8]byte
}

// NewReaderRand wraps r as a randomness capability
func NewReaderRand(r io.Reader) *ReaderRand {
	return &ReaderRand{r: r}
}

// Below returns a uniform value in [0, bound)
func (rr *ReaderRand) Below(bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, ErrInvalidBound
	}

	// Smallest value that keeps v % bound unbiased: 2^64 mod bound.
	threshold := -bound % bound
	for {
		v, err := rr.next()
		if err != nil {
			return 0, err
		}
		if v >= threshold {
			return v % bound, nil
		}
	}
}

func (rr *ReaderRand) next() (uint64, error) {
	if _, err := io.ReadFull(rr.r, rr.buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrExhausted
		}
		return 0, fmt.Errorf("failed to read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(rr.buf[:]), nil
}
