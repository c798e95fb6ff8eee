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

import "github.com/ajroetker/go-pairdot/hwy/contrib/dot"

// RowObserver is called once per completed row of the left operand, in order.
// It exists for progress reporting and has no effect on the result.
type RowObserver func(row int)

// NaivePairwise computes C = A * B^T with one dot.DotFloat64 call per (i, j)
// pair and no blocking across rows. If observe is non-nil it is called after
// each row of C is done, including when B has no rows.
//
// Layouts match BasePairwise: A is N x K, B is M x K, C is N x M, all row-major.
func NaivePairwise(a, b, c []float64, n, m, k int, observe RowObserver) {
	if len(a) < n*k {
		panic("pairdot: A slice too short")
	}
	if len(b) < m*k {
		panic("pairdot: B slice too short")
	}
	if len(c) < n*m {
		panic("pairdot: C slice too short")
	}

	for i := 0; i < n; i++ {
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < m; j++ {
			c[i*m+j] = dot.DotFloat64(aRow, b[j*k:(j+1)*k])
		}
		if observe != nil {
			observe(i)
		}
	}
}
