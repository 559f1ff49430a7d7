// SPDX-License-Identifier: MIT

// Package config loads chemeval settings and batch files from YAML.
//
//	ordering: augmenting   # or greedy
//	max_passes: 100
//	verbose: false
//	history_file: .chemeval_history
//	deep: true
//
// Missing keys keep their Default value. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chemeval/matrix"
)

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// DefaultHistoryFile is the REPL history path when none is configured.
const DefaultHistoryFile = ".chemeval_history"

// Config holds the CLI and balancer settings.
type Config struct {
	// Ordering is the row reordering strategy: "augmenting" or "greedy".
	Ordering string `yaml:"ordering"`
	// MaxPasses bounds the greedy strategy.
	MaxPasses int `yaml:"max_passes"`
	// Verbose traces dispatch and elimination steps to the log.
	Verbose bool `yaml:"verbose"`
	// HistoryFile stores REPL history; empty disables it.
	HistoryFile string `yaml:"history_file"`
	// Deep selects ApplyDeep over the single top-level Apply pass.
	Deep bool `yaml:"deep"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Ordering:    matrix.DefaultOrdering.String(),
		MaxPasses:   matrix.DefaultMaxPasses,
		HistoryFile: DefaultHistoryFile,
		Deep:        true,
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := c.ordering(); err != nil {
		return err
	}
	if c.MaxPasses <= 0 {
		return fmt.Errorf("max_passes %d: must be > 0: %w", c.MaxPasses, ErrInvalid)
	}
	return nil
}

func (c Config) ordering() (matrix.Ordering, error) {
	switch c.Ordering {
	case matrix.OrderingAugmenting.String():
		return matrix.OrderingAugmenting, nil
	case matrix.OrderingGreedy.String():
		return matrix.OrderingGreedy, nil
	}
	return 0, fmt.Errorf("ordering %q: want %q or %q: %w", c.Ordering,
		matrix.OrderingAugmenting, matrix.OrderingGreedy, ErrInvalid)
}

// MatrixOptions translates the settings into matrix options. c must be
// valid.
func (c Config) MatrixOptions() []matrix.Option {
	ord, err := c.ordering()
	if err != nil {
		ord = matrix.DefaultOrdering
	}
	passes := c.MaxPasses
	if passes <= 0 {
		passes = matrix.DefaultMaxPasses
	}
	return []matrix.Option{matrix.WithOrdering(ord), matrix.WithMaxPasses(passes)}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
