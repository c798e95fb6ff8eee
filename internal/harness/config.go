// Copyright 2025 go-pairdot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package harness times the pairdot kernels under the execution strategies
// the pairdotbench command reports on.
//
// A run generates three random matrices A, B and C from a fixed seed, then for
// every selected scenario computes the pair A·Bᵀ and A·Cᵀ and records the wall
// clock time around the pair. The outputs of every scenario are checked
// against an independent reference before the report is returned.
package harness

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("harness: invalid config")

	// ErrResultMismatch is returned when a scenario's output disagrees with
	// the reference beyond tolerance.
	ErrResultMismatch = errors.New("harness: result mismatch")
)

// Default sizes and seed of the benchmark inputs.
const (
	DefaultRowsA   = 1000
	DefaultRowsB   = 2000
	DefaultRowsC   = 3000
	DefaultCols    = 10
	DefaultSeed    = 100
	DefaultWorkers = 2
)

// Config controls one harness run. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	RowsA int
	RowsB int
	RowsC int
	// Cols is the feature dimension shared by A, B and C.
	Cols int
	Seed uint64
	// Workers is the size of the pool the concurrent scenarios submit to.
	Workers int
	// Scenarios lists scenario names to run, in order. Empty means all.
	Scenarios []string
	// Progress enables the progress bar of the naive scenario.
	Progress bool
	// PlotPath, if set, is where a bar chart of the timings is written.
	PlotPath string
}

// DefaultConfig returns the fixed benchmark configuration: A 1000x10,
// B 2000x10, C 3000x10, seed 100, a two-worker pool, every scenario.
func DefaultConfig() Config {
	return Config{
		RowsA:     DefaultRowsA,
		RowsB:     DefaultRowsB,
		RowsC:     DefaultRowsC,
		Cols:      DefaultCols,
		Seed:      DefaultSeed,
		Workers:   DefaultWorkers,
		Scenarios: ScenarioNames(),
		Progress:  true,
	}
}

// Validate checks sizes, worker count and scenario names.
func (c Config) Validate() error {
	if c.RowsA < 0 || c.RowsB < 0 || c.RowsC < 0 {
		return fmt.Errorf("rows must be >= 0, got A=%d B=%d C=%d: %w", c.RowsA, c.RowsB, c.RowsC, ErrInvalidConfig)
	}
	if c.Cols < 1 {
		return fmt.Errorf("cols must be >= 1, got %d: %w", c.Cols, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	if unknown := lo.Without(c.Scenarios, ScenarioNames()...); len(unknown) > 0 {
		return fmt.Errorf("unknown scenarios %v (known: %v): %w", unknown, ScenarioNames(), ErrInvalidConfig)
	}
	if dups := lo.FindDuplicates(c.Scenarios); len(dups) > 0 {
		return fmt.Errorf("scenarios listed twice: %v: %w", dups, ErrInvalidConfig)
	}
	return nil
}

// selectedScenarios returns the configured scenarios in the configured order.
func (c Config) selectedScenarios() []Scenario {
	if len(c.Scenarios) == 0 {
		return slices.Clone(scenarios)
	}
	return lo.Map(c.Scenarios, func(name string, _ int) Scenario {
		s, _ := lo.Find(scenarios, func(s Scenario) bool { return s.Name == name })
		return s
	})
}
