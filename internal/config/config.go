// Package config loads the optional wavstrip TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/wavstrip"
)

// Config mirrors the TOML sections of a wavstrip config file.
type Config struct {
	Output     OutputConfig     `toml:"output"`
	Processing ProcessingConfig `toml:"processing"`
}

type OutputConfig struct {
	Suffix string `toml:"suffix"`
}

type ProcessingConfig struct {
	Workers int  `toml:"workers"`
	Verify  bool `toml:"verify"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Suffix: wavstrip.DefaultSuffix,
		},
		Processing: ProcessingConfig{
			Workers: 1,
			Verify:  false,
		},
	}
}

// Load reads the TOML file at path over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the constraints of every section.
func (c Config) Validate() error {
	if c.Output.Suffix == "" {
		return errors.New("output.suffix must not be empty")
	}

	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return errors.New("output.suffix must not contain path separators")
	}

	if c.Processing.Workers < 1 {
		return errors.New("processing.workers must be >= 1")
	}

	return nil
}

// Options converts the config into processor options.
func (c Config) Options() wavstrip.Options {
	return wavstrip.Options{
		Suffix:  c.Output.Suffix,
		Verify:  c.Processing.Verify,
		Workers: c.Processing.Workers,
	}
}
