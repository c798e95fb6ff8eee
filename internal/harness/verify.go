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
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-pairdot/hwy/contrib/pairdot"
)

// Tolerance is the relative error allowed between a scenario's output and the
// reference. Strategies sum in different orders, so results are not bit-exact.
const Tolerance = 1e-9

// Verify recomputes A·Bᵀ and A·Cᵀ with pairdot.Batch and checks every result
// of report against them. Checks run concurrently, at most workers at a time.
func Verify(ctx context.Context, report *Report, workers int) error {
	in := report.Inputs
	ref, err := pairdot.Batch(ctx, workers, pairdot.ModeBLAS, in.A, []pairdot.Matrix{in.B, in.C})
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, res := range report.Results {
		for i, label := range []string{"A·Bᵀ", "A·Cᵀ"} {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := compareMatrices(ref[i], res.Outputs[i], Tolerance); err != nil {
					return fmt.Errorf("scenario %s %s: %w", res.Scenario.Name, label, err)
				}
				return nil
			})
		}
	}
	return g.Wait()
}

// compareMatrices checks shape and element-wise relative error.
// Elements are compared as |w-g| <= tol * max(|w|, |g|, 1).
func compareMatrices(want, got pairdot.Matrix, tol float64) error {
	if want.Rows != got.Rows || want.Cols != got.Cols || len(got.Data) != len(want.Data) {
		return fmt.Errorf("shape %v, want %v: %w", got, want, ErrResultMismatch)
	}
	for idx, w := range want.Data {
		g := got.Data[idx]
		if math.Abs(w-g) > tol*max(math.Abs(w), math.Abs(g), 1) {
			i, j := idx/max(want.Cols, 1), idx%max(want.Cols, 1)
			return fmt.Errorf("element (%d, %d) = %v, want %v: %w", i, j, g, w, ErrResultMismatch)
		}
	}
	return nil
}
