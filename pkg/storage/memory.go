package storage

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryBackend implements Backend using in-memory maps (not persistent)
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryBackend creates a new in-memory storage backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

// CreateBucket creates a new bucket
func (m *MemoryBackend) CreateBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.buckets[string(name)]; !exists {
		m.buckets[string(name)] = make(map[string][]byte)
	}
	return nil
}

// Put stores a copy of value under key
func (m *MemoryBackend) Put(bucket, key, value []byte) error {
	return m.Batch(Write{Bucket: bucket, Key: key, Value: value})
}

// Get returns a copy of the value stored under key
func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, err := m.bucket(bucket)
	if err != nil {
		return nil, err
	}

	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}
	return clone(value), nil
}

// Delete removes a key from a bucket
func (m *MemoryBackend) Delete(bucket, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, err := m.bucket(bucket)
	if err != nil {
		return err
	}
	delete(bkt, string(key))
	return nil
}

// Batch applies writes under a single lock; nothing is written if any bucket is missing
func (m *MemoryBackend) Batch(writes ...Write) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range writes {
		if _, err := m.bucket(w.Bucket); err != nil {
			return err
		}
	}
	for _, w := range writes {
		m.buckets[string(w.Bucket)][string(w.Key)] = clone(w.Value)
	}
	return nil
}

// ForEach iterates over a bucket in key order
func (m *MemoryBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, err := m.bucket(bucket)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(bkt))
	for k := range bkt {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := fn([]byte(k), bkt[k]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of keys in a bucket
func (m *MemoryBackend) Count(bucket []byte) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, err := m.bucket(bucket)
	if err != nil {
		return 0, err
	}
	return len(bkt), nil
}

// Close is a no-op for memory backend
func (m *MemoryBackend) Close() error {
	return nil
}

// bucket must be called with m.mu held
func (m *MemoryBackend) bucket(name []byte) (map[string][]byte, error) {
	bkt, exists := m.buckets[string(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, name)
	}
	return bkt, nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
