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

package pairdot

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-pairdot/hwy/contrib/workerpool"
)

// Mode selects the execution strategy used by Compute.
// All modes produce the same result up to floating-point summation order.
type Mode int

const (
	// ModeNaive runs NaivePairwise: one dot product call per row pair.
	ModeNaive Mode = iota

	// ModeCompiled runs BasePairwise: the register-blocked vector kernel.
	ModeCompiled

	// ModeParallel runs ParallelPairwise over a worker pool.
	ModeParallel

	// ModeBLAS runs BLASPairwise through gonum.
	ModeBLAS
)

var modeNames = [...]string{
	ModeNaive:    "naive",
	ModeCompiled: "compiled",
	ModeParallel: "parallel",
	ModeBLAS:     "blas",
}

// String returns the mode's name as accepted by ParseMode.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

// Modes returns every supported mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeNaive, ModeCompiled, ModeParallel, ModeBLAS}
}

// ParseMode maps a name such as "compiled" back to its Mode.
// Matching ignores case and surrounding space.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Option configures a single Compute call.
type Option func(*options)

type options struct {
	observer RowObserver
	pool     *workerpool.Pool
}

// WithRowObserver installs a per-row progress callback.
// Only ModeNaive reports rows; the other modes ignore it.
func WithRowObserver(fn RowObserver) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithPool sets the worker pool used by ModeParallel. Without one, ModeParallel
// creates a GOMAXPROCS-sized pool for the duration of the call.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// Pairwise computes the pairwise dot-product matrix a·bᵀ with the compiled kernel.
func Pairwise(a, b Matrix) (Matrix, error) {
	return Compute(ModeCompiled, a, b)
}

// Compute validates a and b, allocates the result, and runs the kernel for mode.
//
// The result has a.Rows rows and b.Rows columns. Column counts are compared
// only when both operands have rows: an operand with no rows has no feature
// vectors to disagree with, and yields an empty result without error.
func Compute(mode Mode, a, b Matrix, opts ...Option) (Matrix, error) {
	if !mode.valid() {
		return Matrix{}, fmt.Errorf("Compute: %v: %w", mode, ErrUnknownMode)
	}
	if err := a.Validate(); err != nil {
		return Matrix{}, fmt.Errorf("left operand: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Matrix{}, fmt.Errorf("right operand: %w", err)
	}
	if a.Rows > 0 && b.Rows > 0 && a.Cols != b.Cols {
		return Matrix{}, fmt.Errorf("%s %v·%vᵀ: left has %d columns, right has %d: %w",
			mode, a, b, a.Cols, b.Cols, ErrDimensionMismatch)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n, m, k := a.Rows, b.Rows, a.Cols
	c := Matrix{Rows: n, Cols: m, Data: make([]float64, n*m)}
	// Naive mode still walks A's rows so the observer sees every one.
	if (n == 0 || m == 0) && mode != ModeNaive {
		return c, nil
	}

	switch mode {
	case ModeNaive:
		NaivePairwise(a.Data, b.Data, c.Data, n, m, k, o.observer)
	case ModeCompiled:
		BasePairwise(a.Data, b.Data, c.Data, n, m, k)
	case ModeParallel:
		pool := o.pool
		if pool == nil {
			pool = workerpool.New(0)
			defer pool.Close()
		}
		ParallelPairwise(pool, a.Data, b.Data, c.Data, n, m, k)
	case ModeBLAS:
		BLASPairwise(a.Data, b.Data, c.Data, n, m, k)
	}
	return c, nil
}
