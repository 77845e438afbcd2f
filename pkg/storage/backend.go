// Package storage provides bucketed key/value backends used to persist a corpus.
package storage

import "errors"

// ErrBucketNotFound is returned when an operation targets a missing bucket
var ErrBucketNotFound = errors.New("bucket not found")

// Backend defines a key-value storage interface with bucket support.
// Values are raw []byte; callers choose their own encoding (see EncodeRecord).
// Implementations must be safe for concurrent use.
type Backend interface {
	// CreateBucket creates a bucket; creating an existing bucket is a no-op
	CreateBucket(name []byte) error

	Put(bucket, key, value []byte) error
	// Get returns nil, nil when the key does not exist
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// Batch applies all writes atomically
	Batch(writes ...Write) error

	// ForEach visits every pair in ascending key order
	ForEach(bucket []byte, fn func(k, v []byte) error) error
	Count(bucket []byte) (int, error)

	Close() error
}

// Write is a single put used by Batch
type Write struct {
	Bucket []byte
	Key    []byte
	Value  []byte
}

// Open returns a bbolt backend at path, or an in-memory backend when path is empty
func Open(path string) (Backend, error) {
	if path == "" {
		return NewMemoryBackend(), nil
	}
	return NewBboltBackend(path)
}
