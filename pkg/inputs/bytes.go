package inputs

import (
	"bytes"
	"encoding/hex"
)

// BytesInput is an owned byte sequence produced by a generator
type BytesInput struct {
	data []byte
}

// NewBytesInput wraps data. The input takes ownership of the slice;
// callers must not modify it afterwards.
func NewBytesInput(data []byte) *BytesInput {
	return &BytesInput{data: data}
}

// Bytes returns the underlying bytes
func (b *BytesInput) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the input
func (b *BytesInput) Len() int {
	return len(b.data)
}

// Equal reports whether both inputs hold the same bytes
func (b *BytesInput) Equal(other *BytesInput) bool {
	return bytes.Equal(b.data, other.data)
}

// String returns the input as lowercase hex
func (b *BytesInput) String() string {
	return hex.EncodeToString(b.data)
}
