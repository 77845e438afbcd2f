package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeRecord marshals a value to msgpack bytes
func EncodeRecord(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// DecodeRecord unmarshals msgpack bytes into v
func DecodeRecord(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// GetRecord reads and decodes a record; found is false when the key does not exist
func GetRecord(b Backend, bucket, key []byte, v any) (found bool, err error) {
	data, err := b.Get(bucket, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := DecodeRecord(data, v); err != nil {
		return false, err
	}
	return true, nil
}
