// Copyright 2025 The go-pairdot Authors. SPDX-License-Identifier: Apache-2.0

package pairdot

import (
	"github.com/ajroetker/go-pairdot/hwy"
	"github.com/ajroetker/go-pairdot/hwy/contrib/workerpool"
)

const (
	// MinParallelOps is the n*m*k work size below which ParallelPairwise runs
	// the kernel inline; dispatching to the pool costs more than it saves.
	MinParallelOps = 64 * 64 * 64

	// RowsPerStrip is how many rows of A one pool task processes.
	// A multiple of 4 keeps every strip on the kernel's four-row fast path.
	RowsPerStrip = 64
)

// ParallelPairwise computes C = A * B^T using a persistent worker pool.
// Divides A into horizontal strips and runs BasePairwise on each strip.
//
//   - A is N x K (row-major, K last)
//   - B is M x K (row-major, K last)
//   - C is N x M (row-major)
//
// Strips write disjoint rows of C, so no synchronisation is needed beyond the
// barrier inside ParallelFor. A nil pool runs the kernel inline.
func ParallelPairwise[T hwy.Floats](pool *workerpool.Pool, a, b, c []T, n, m, k int) {
	if pool == nil || n*m*k < MinParallelOps {
		BasePairwise(a, b, c, n, m, k)
		return
	}

	numStrips := (n + RowsPerStrip - 1) / RowsPerStrip

	pool.ParallelFor(numStrips, func(start, end int) {
		for strip := start; strip < end; strip++ {
			rowStart := strip * RowsPerStrip
			rowEnd := min(rowStart+RowsPerStrip, n)

			aStrip := a[rowStart*k : rowEnd*k]
			cStrip := c[rowStart*m : rowEnd*m]

			BasePairwise(aStrip, b, cStrip, rowEnd-rowStart, m, k)
		}
	})
}

// ParallelPairwiseFloat64 is the non-generic version for float64.
func ParallelPairwiseFloat64(pool *workerpool.Pool, a, b, c []float64, n, m, k int) {
	ParallelPairwise(pool, a, b, c, n, m, k)
}
