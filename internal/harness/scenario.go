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

package harness

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-pairdot/hwy/contrib/pairdot"
	"github.com/ajroetker/go-pairdot/hwy/contrib/workerpool"
)

// Scenario names.
const (
	ScenarioNaive              = "naive"
	ScenarioCompiled           = "compiled"
	ScenarioCompiledSerialized = "compiled-serialized"
	ScenarioCompiledConcurrent = "compiled-concurrent"
	ScenarioParallel           = "parallel"
	ScenarioBLAS               = "blas"
)

// Scenario is one execution strategy for the pair A·Bᵀ, A·Cᵀ.
type Scenario struct {
	Name        string
	Description string
	// Concurrent reports whether the two invocations overlap in time.
	Concurrent bool
	run        func(env *runEnv) (Outputs, error)
}

// Outputs holds the two results of one scenario: A·Bᵀ and A·Cᵀ.
type Outputs [2]pairdot.Matrix

// runEnv is what a scenario may use while it is being timed.
type runEnv struct {
	in   Inputs
	pool *workerpool.Pool
	// observer returns the row observer for one invocation; it may return nil.
	observer func(label string, rows int) (pairdot.RowObserver, func())
}

var scenarios = []Scenario{
	{
		Name:        ScenarioNaive,
		Description: "nested loops, one dot product call per row pair, with progress",
		run:         runNaive,
	},
	{
		Name:        ScenarioCompiled,
		Description: "register-blocked vector kernel, invocations one after the other",
		run:         sequential(pairdot.ModeCompiled),
	},
	{
		Name:        ScenarioCompiledSerialized,
		Description: "compiled kernel submitted to the pool, one shared lock held per invocation",
		Concurrent:  true,
		run:         runSerialized,
	},
	{
		Name:        ScenarioCompiledConcurrent,
		Description: "compiled kernel submitted to the pool, no shared lock",
		Concurrent:  true,
		run:         runConcurrent,
	},
	{
		Name:        ScenarioParallel,
		Description: "each invocation split into row strips across the pool",
		run:         sequential(pairdot.ModeParallel),
	},
	{
		Name:        ScenarioBLAS,
		Description: "gonum Dgemm with B transposed",
		run:         sequential(pairdot.ModeBLAS),
	},
}

// ScenarioNames lists every scenario in its default order.
func ScenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

// Scenarios returns a copy of the scenario table.
func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

func runNaive(env *runEnv) (Outputs, error) {
	var out Outputs
	for i, rhs := range []struct {
		label string
		m     pairdot.Matrix
	}{{"A·Bᵀ", env.in.B}, {"A·Cᵀ", env.in.C}} {
		observe, finish := env.observer(rhs.label, env.in.A.Rows)
		r, err := pairdot.Compute(pairdot.ModeNaive, env.in.A, rhs.m, pairdot.WithRowObserver(observe))
		finish()
		if err != nil {
			return Outputs{}, fmt.Errorf("%s: %w", rhs.label, err)
		}
		out[i] = r
	}
	return out, nil
}

func sequential(mode pairdot.Mode) func(env *runEnv) (Outputs, error) {
	return func(env *runEnv) (Outputs, error) {
		x, err := pairdot.Compute(mode, env.in.A, env.in.B, pairdot.WithPool(env.pool))
		if err != nil {
			return Outputs{}, fmt.Errorf("A·Bᵀ: %w", err)
		}
		y, err := pairdot.Compute(mode, env.in.A, env.in.C, pairdot.WithPool(env.pool))
		if err != nil {
			return Outputs{}, fmt.Errorf("A·Cᵀ: %w", err)
		}
		return Outputs{x, y}, nil
	}
}

// submitPair submits A·Bᵀ and A·Cᵀ to the pool, wrapping each invocation with
// guard, and waits for both.
func submitPair(env *runEnv, guard func(fn func())) (Outputs, error) {
	var out Outputs
	var errs [2]error
	tasks := make([]*workerpool.Task, 2)
	for i, rhs := range []pairdot.Matrix{env.in.B, env.in.C} {
		tasks[i] = env.pool.Submit(func() {
			guard(func() {
				out[i], errs[i] = pairdot.Compute(pairdot.ModeCompiled, env.in.A, rhs)
			})
		})
	}
	workerpool.Wait(tasks...)

	for i, label := range []string{"A·Bᵀ", "A·Cᵀ"} {
		if errs[i] != nil {
			return Outputs{}, fmt.Errorf("%s: %w", label, errs[i])
		}
	}
	return out, nil
}

// runSerialized reproduces a compiled kernel that never releases a
// process-wide lock: both invocations are in flight at once but each holds
// the same mutex for its whole duration, so they run one at a time.
func runSerialized(env *runEnv) (Outputs, error) {
	var exclusive sync.Mutex
	return submitPair(env, func(fn func()) {
		exclusive.Lock()
		defer exclusive.Unlock()
		fn()
	})
}

func runConcurrent(env *runEnv) (Outputs, error) {
	return submitPair(env, func(fn func()) { fn() })
}
