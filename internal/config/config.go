// Package config loads inputgen settings from defaults, an optional TOML
// file and INPUTGEN_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"pkg.jsn.cam/inputgen/pkg/generators"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Entropy sources
const (
	EntropyPCG    = "pcg"
	EntropyCrypto = "crypto"
)

// Config holds settings shared by the CLI commands
type Config struct {
	CorpusPath string `toml:"corpus_path" env:"INPUTGEN_CORPUS_PATH"`
	Generator  string `toml:"generator" env:"INPUTGEN_GENERATOR"`
	MaxSize    int    `toml:"max_size" env:"INPUTGEN_MAX_SIZE"`
	Count      int    `toml:"count" env:"INPUTGEN_COUNT"`
	Workers    int    `toml:"workers" env:"INPUTGEN_WORKERS"`
	// Seed for the pcg source; 0 picks one from the clock
	Seed    uint64 `toml:"seed" env:"INPUTGEN_SEED"`
	Entropy string `toml:"entropy" env:"INPUTGEN_ENTROPY"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		CorpusPath: "var/corpus.db",
		Generator:  "bytes",
		MaxSize:    4096,
		Count:      1000,
		Workers:    4,
		Entropy:    EntropyPCG,
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	}

	// Unset variables leave file and default values alone
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable for seeding
func (c Config) Validate() error {
	if c.CorpusPath == "" {
		return fmt.Errorf("%w: corpus_path must not be empty", ErrInvalidConfig)
	}
	if _, err := generators.Describe(c.Generator); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max_size must not be negative", ErrInvalidConfig)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	switch c.Entropy {
	case EntropyPCG, EntropyCrypto:
	default:
		return fmt.Errorf("%w: unknown entropy source %q", ErrInvalidConfig, c.Entropy)
	}
	return nil
}
