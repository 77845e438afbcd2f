package storage

import (
	"fmt"
	"log"

	bolt "go.etcd.io/bbolt"
)

// BboltBackend implements Backend using bbolt
type BboltBackend struct {
	db *bolt.DB
}

// NewBboltBackend opens (or creates) a bbolt database at dbPath
func NewBboltBackend(dbPath string) (*BboltBackend, error) {
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	log.Printf("[STORAGE] Bbolt storage opened at %s", dbPath)
	return &BboltBackend{db: db}, nil
}

// CreateBucket creates a new bucket
func (b *BboltBackend) CreateBucket(name []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

// Put stores a key-value pair in a bucket
func (b *BboltBackend) Put(bucket, key, value []byte) error {
	return b.Batch(Write{Bucket: bucket, Key: key, Value: value})
}

// Get retrieves a value from a bucket
func (b *BboltBackend) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		if v := bkt.Get(key); v != nil {
			// Only valid for the life of the transaction
			value = clone(v)
		}
		return nil
	})
	return value, err
}

// Delete removes a key from a bucket
func (b *BboltBackend) Delete(bucket, key []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		return bkt.Delete(key)
	})
}

// Batch applies all writes in one read-write transaction
func (b *BboltBackend) Batch(writes ...Write) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		for _, w := range writes {
			bkt, err := lookup(tx, w.Bucket)
			if err != nil {
				return err
			}
			if err := bkt.Put(w.Key, w.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// ForEach iterates over all key-value pairs in a bucket
func (b *BboltBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		return bkt.ForEach(fn)
	})
}

// Count returns the number of keys in a bucket
func (b *BboltBackend) Count(bucket []byte) (int, error) {
	var n int
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt, err := lookup(tx, bucket)
		if err != nil {
			return err
		}
		n = bkt.Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the database
func (b *BboltBackend) Close() error {
	return b.db.Close()
}

func lookup(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	bkt := tx.Bucket(name)
	if bkt == nil {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, name)
	}
	return bkt, nil
}

