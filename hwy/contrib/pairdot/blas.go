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
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// BLASPairwise computes C = A * B^T with gonum's Dgemm, passing B with the
// transpose flag so no copy of B is made.
//
// Layouts match BasePairwise: A is N x K, B is M x K, C is N x M, all row-major.
func BLASPairwise(a, b, c []float64, n, m, k int) {
	if len(a) < n*k {
		panic("pairdot: A slice too short")
	}
	if len(b) < m*k {
		panic("pairdot: B slice too short")
	}
	if len(c) < n*m {
		panic("pairdot: C slice too short")
	}

	// Dgemm rejects zero leading dimensions, so the degenerate shapes are
	// handled here: an empty output needs nothing, and k == 0 means all zeros.
	if n == 0 || m == 0 {
		return
	}
	if k == 0 {
		clear(c[:n*m])
		return
	}

	blas64.Gemm(blas.NoTrans, blas.Trans, 1,
		blas64.General{Rows: n, Cols: k, Stride: k, Data: a[:n*k]},
		blas64.General{Rows: m, Cols: k, Stride: k, Data: b[:m*k]},
		0,
		blas64.General{Rows: n, Cols: m, Stride: m, Data: c[:n*m]},
	)
}
