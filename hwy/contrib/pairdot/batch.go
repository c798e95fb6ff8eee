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
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch computes a·bᵀ for every b in bs, running up to workers invocations at
// once. Results are returned in the order of bs regardless of completion order.
//
// Invocations share a but write disjoint outputs, so they need no coordination
// beyond waiting for all of them. The first error cancels ctx for invocations
// that have not started yet; running invocations are not interrupted.
// workers <= 0 means no limit.
func Batch(ctx context.Context, workers int, mode Mode, a Matrix, bs []Matrix, opts ...Option) ([]Matrix, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]Matrix, len(bs))
	for i, b := range bs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Compute(mode, a, b, opts...)
			if err != nil {
				return fmt.Errorf("operand %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
