// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyJob indicates a job naming neither or both of eval and balance.
var ErrEmptyJob = errors.New("config: job needs exactly one of eval, balance")

// Job is one batch entry.
type Job struct {
	// Eval is an expression to rewrite with the declared functions.
	Eval string `yaml:"eval,omitempty"`
	// Balance is a reaction to balance.
	Balance string `yaml:"balance,omitempty"`
}

// Batch is a list of jobs run in order.
type Batch struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadBatch reads a batch file.
func LoadBatch(path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	b, err := DecodeBatch(f)
	if err != nil {
		return Batch{}, fmt.Errorf("batch %s: %w", path, err)
	}
	return b, nil
}

// DecodeBatch reads a batch document and validates every job.
func DecodeBatch(r io.Reader) (Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Batch{}, err
	}
	for i, j := range b.Jobs {
		if (j.Eval == "") == (j.Balance == "") {
			return Batch{}, fmt.Errorf("job %d: %w", i, ErrEmptyJob)
		}
	}
	return b, nil
}
