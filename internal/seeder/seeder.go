// Package seeder populates a corpus by fanning generator calls out over
// a pool of workers, each drawing from its own randomness source.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"pkg.jsn.cam/inputgen/internal/corpus"
	"pkg.jsn.cam/inputgen/pkg/generators"
	"pkg.jsn.cam/inputgen/pkg/inputs"
	"pkg.jsn.cam/inputgen/pkg/rands"
)

// ErrInvalidOptions is returned when Run is given unusable options
var ErrInvalidOptions = errors.New("invalid seeder options")

// Sink receives generated inputs
type Sink interface {
	Add(generator string, in *inputs.BytesInput, dummy bool) (corpus.Entry, error)
}

// RandFactory returns the private randomness source for one worker.
// It is called once per worker, before that worker starts generating.
type RandFactory func(worker int) rands.Rand

// Options configures a seeding run
type Options struct {
	Generator string
	MaxSize   int
	Count     int
	Workers   int
	// Dummy stores GenerateDummy output and never calls the RandFactory
	Dummy bool
}

// Result reports what a run produced
type Result struct {
	Added   int
	Bytes   uint64
	Elapsed time.Duration
}

// Seeder drives generators into a Sink
type Seeder struct {
	sink     Sink
	newRand  RandFactory
	progress func(added int)
}

// New creates a seeder writing to sink
func New(sink Sink, newRand RandFactory) *Seeder {
	return &Seeder{sink: sink, newRand: newRand}
}

// OnProgress registers fn to be called after every stored input with the
// running total. fn is called from worker goroutines and must be safe for concurrent use.
func (s *Seeder) OnProgress(fn func(added int)) {
	s.progress = fn
}

// Run generates opts.Count inputs. It stops at the first error or when ctx is
// cancelled; inputs stored before that point stay in the sink.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Count < 0 {
		return Result{}, fmt.Errorf("%w: count %d", ErrInvalidOptions, opts.Count)
	}
	if opts.Workers < 1 {
		return Result{}, fmt.Errorf("%w: workers %d", ErrInvalidOptions, opts.Workers)
	}
	if !opts.Dummy && s.newRand == nil {
		return Result{}, fmt.Errorf("%w: no randomness source", ErrInvalidOptions)
	}

	// Generators are immutable, so every worker shares this one
	gen, err := generators.Get(opts.Generator, opts.MaxSize)
	if err != nil {
		return Result{}, err
	}

	log.Printf("[SEEDER] Generating %d %s inputs (max size %d) across %d workers",
		opts.Count, opts.Generator, opts.MaxSize, opts.Workers)
	start := time.Now()

	var added atomic.Int64
	var total atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	for worker, quota := range split(opts.Count, opts.Workers) {
		if quota == 0 {
			continue
		}
		g.Go(func() error {
			var r rands.Rand
			if !opts.Dummy {
				r = s.newRand(worker)
			}
			for i := 0; i < quota; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				in, err := produce(gen, r, opts.Dummy)
				if err != nil {
					return fmt.Errorf("worker %d: %w", worker, err)
				}

				if _, err := s.sink.Add(opts.Generator, in, opts.Dummy); err != nil {
					return fmt.Errorf("worker %d: %w", worker, err)
				}
				total.Add(uint64(in.Len()))
				n := added.Add(1)
				if s.progress != nil {
					s.progress(int(n))
				}
			}
			return nil
		})
	}

	err = g.Wait()
	res := Result{
		Added:   int(added.Load()),
		Bytes:   total.Load(),
		Elapsed: time.Since(start),
	}
	if err != nil {
		log.Printf("[SEEDER] Stopped after %d inputs: %v", res.Added, err)
		return res, err
	}

	log.Printf("[SEEDER] Generated %d inputs (%d bytes) in %v", res.Added, res.Bytes, res.Elapsed)
	return res, nil
}

func produce(gen generators.BytesGenerator, r rands.Rand, dummy bool) (*inputs.BytesInput, error) {
	if dummy {
		return gen.GenerateDummy(), nil
	}
	return gen.Generate(r)
}

// split divides count into workers quotas that differ by at most one
func split(count, workers int) []int {
	quotas := make([]int, workers)
	for i := range quotas {
		quotas[i] = count / workers
		if i < count%workers {
			quotas[i]++
		}
	}
	return quotas
}
