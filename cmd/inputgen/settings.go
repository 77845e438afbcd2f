package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"pkg.jsn.cam/inputgen/internal/config"
	"pkg.jsn.cam/inputgen/internal/corpus"
	"pkg.jsn.cam/inputgen/internal/seeder"
	"pkg.jsn.cam/inputgen/pkg/rands"
	"pkg.jsn.cam/inputgen/pkg/storage"
)

// errEmptyCorpusPath stops openCorpus from falling back to an in-memory backend
var errEmptyCorpusPath = errors.New("corpus path must not be empty")

// addGenerationFlags registers the flags shared by sample and seed
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("generator", "g", "", "generator name (see `inputgen list`)")
	cmd.Flags().Int("max-size", 0, "exclusive upper bound on generated length")
	cmd.Flags().Uint64("seed", 0, "seed for the pcg entropy source (0 = from clock)")
	cmd.Flags().String("entropy", "", "entropy source: pcg or crypto")
	cmd.Flags().Bool("dummy", false, "produce deterministic dummy inputs instead of random ones")
}

// loadConfig reads the config file and environment, then applies any flags the user set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.CorpusPath, _ = flags.GetString("corpus")
	}
	if flags.Changed("generator") {
		cfg.Generator, _ = flags.GetString("generator")
	}
	if flags.Changed("max-size") {
		cfg.MaxSize, _ = flags.GetInt("max-size")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("entropy") {
		cfg.Entropy, _ = flags.GetString("entropy")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// randFactory returns per-worker randomness sources for cfg.
// pcg workers get consecutive seeds so a run is reproducible from one seed.
func randFactory(cfg config.Config) seeder.RandFactory {
	if cfg.Entropy == config.EntropyCrypto {
		return func(int) rands.Rand { return rands.NewReaderRand(rand.Reader) }
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		log.Printf("[INPUTGEN] Using seed %d", seed)
	}
	return func(worker int) rands.Rand {
		return rands.NewStdRand(seed + uint64(worker))
	}
}

// openCorpus opens the corpus database, creating its directory if needed
func openCorpus(path string) (*corpus.Corpus, error) {
	if path == "" {
		return nil, errEmptyCorpusPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	backend, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := corpus.Open(backend)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	return c, nil
}
