// Package corpus persists generated inputs on a storage backend.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/storage"
)

// ErrEntryNotFound is returned when an entry ID is not in the corpus
var ErrEntryNotFound = errors.New("corpus entry not found")

var (
	inputsBucket  = []byte("inputs")
	entriesBucket = []byte("entries")
)

// Entry describes one stored input
type Entry struct {
	ID        string    `msgpack:"id"`
	Generator string    `msgpack:"generator"`
	Size      int       `msgpack:"size"`
	Dummy     bool      `msgpack:"dummy"`
	CreatedAt time.Time `msgpack:"created_at"`
}

// Stats summarizes a corpus
type Stats struct {
	Count       int
	TotalBytes  uint64
	Dummies     int
	ByGenerator map[string]int
}

// Corpus stores input bytes and their metadata in two buckets keyed by entry ID.
// It is safe for concurrent use when the backend is.
type Corpus struct {
	backend storage.Backend
	now     func() time.Time
}

// Open prepares backend for use as a corpus
func Open(backend storage.Backend) (*Corpus, error) {
	for _, name := range [][]byte{inputsBucket, entriesBucket} {
		if err := backend.CreateBucket(name); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", name, err)
		}
	}
	return &Corpus{backend: backend, now: time.Now}, nil
}

// Add stores in under a fresh ID
func (c *Corpus) Add(generator string, in *inputs.BytesInput, dummy bool) (Entry, error) {
	entry := Entry{
		ID:        uuid.New().String(),
		Generator: generator,
		Size:      in.Len(),
		Dummy:     dummy,
		CreatedAt: c.now().UTC(),
	}

	meta, err := storage.EncodeRecord(entry)
	if err != nil {
		return Entry{}, err
	}

	key := []byte(entry.ID)
	err = c.backend.Batch(
		storage.Write{Bucket: inputsBucket, Key: key, Value: in.Bytes()},
		storage.Write{Bucket: entriesBucket, Key: key, Value: meta},
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to store entry %s: %w", entry.ID, err)
	}
	return entry, nil
}

// Get returns an entry and its input
func (c *Corpus) Get(id string) (Entry, *inputs.BytesInput, error) {
	var entry Entry
	found, err := storage.GetRecord(c.backend, entriesBucket, []byte(id), &entry)
	if err != nil {
		return Entry{}, nil, err
	}
	if !found {
		return Entry{}, nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	data, err := c.backend.Get(inputsBucket, []byte(id))
	if err != nil {
		return Entry{}, nil, err
	}
	if data == nil && entry.Size > 0 {
		return Entry{}, nil, fmt.Errorf("%w: %s has no input bytes", ErrEntryNotFound, id)
	}
	return entry, inputs.NewBytesInput(data), nil
}

// Len returns the number of entries
func (c *Corpus) Len() (int, error) {
	return c.backend.Count(entriesBucket)
}

// Entries returns all entries ordered by creation time, then ID
func (c *Corpus) Entries() ([]Entry, error) {
	var entries []Entry
	err := c.backend.ForEach(entriesBucket, func(k, v []byte) error {
		var e Entry
		if err := storage.DecodeRecord(v, &e); err != nil {
			return fmt.Errorf("entry %s: %w", k, err)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Stats summarizes the corpus
func (c *Corpus) Stats() (Stats, error) {
	entries, err := c.Entries()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{ByGenerator: make(map[string]int)}
	for _, e := range entries {
		stats.Count++
		stats.TotalBytes += uint64(e.Size)
		stats.ByGenerator[e.Generator]++
		if e.Dummy {
			stats.Dummies++
		}
	}
	return stats, nil
}

// Export writes every input to dir/<id> and returns the number of files written
func (c *Corpus) Export(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	written := 0
	err := c.backend.ForEach(inputsBucket, func(k, v []byte) error {
		if err := os.WriteFile(filepath.Join(dir, string(k)), v, 0644); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, err
}

// Close closes the underlying backend
func (c *Corpus) Close() error {
	return c.backend.Close()
}
