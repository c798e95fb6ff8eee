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

import "github.com/ajroetker/go-pairdot/hwy"

// BasePairwise computes C = A * B^T where:
//   - A is N x K (row-major, K last)
//   - B is M x K (row-major, K last)
//   - C is N x M (row-major)
//
// Each output element: C[i,j] = dot(A[i,:], B[j,:])
//
// The kernel vectorizes along K:
//  1. Load NumLanes elements from four A rows and one B row
//  2. Multiply and accumulate into four vector accumulators
//  3. Horizontal sum at the end, then the scalar tail
//
// Sharing each B load across four A rows cuts B traffic by 4x; with a small K
// the whole A quad stays in L1 while the kernel streams over B.
func BasePairwise[T hwy.Floats](a, b, c []T, n, m, k int) {
	if len(a) < n*k {
		panic("pairdot: A slice too short")
	}
	if len(b) < m*k {
		panic("pairdot: B slice too short")
	}
	if len(c) < n*m {
		panic("pairdot: C slice too short")
	}

	const lanes = hwy.NumLanes

	var i int
	for i = 0; i+3 < n; i += 4 {
		aRow0 := a[i*k : (i+1)*k]
		aRow1 := a[(i+1)*k : (i+2)*k]
		aRow2 := a[(i+2)*k : (i+3)*k]
		aRow3 := a[(i+3)*k : (i+4)*k]

		cRow0 := c[i*m : (i+1)*m]
		cRow1 := c[(i+1)*m : (i+2)*m]
		cRow2 := c[(i+2)*m : (i+3)*m]
		cRow3 := c[(i+3)*m : (i+4)*m]

		for j := 0; j < m; j++ {
			bRow := b[j*k : (j+1)*k]

			acc0 := hwy.Zero[T]()
			acc1 := hwy.Zero[T]()
			acc2 := hwy.Zero[T]()
			acc3 := hwy.Zero[T]()

			var p int
			for p = 0; p+lanes <= k; p += lanes {
				vB := hwy.Load(bRow[p:])

				acc0 = hwy.MulAdd(hwy.Load(aRow0[p:]), vB, acc0)
				acc1 = hwy.MulAdd(hwy.Load(aRow1[p:]), vB, acc1)
				acc2 = hwy.MulAdd(hwy.Load(aRow2[p:]), vB, acc2)
				acc3 = hwy.MulAdd(hwy.Load(aRow3[p:]), vB, acc3)
			}

			sum0 := hwy.ReduceSum(acc0)
			sum1 := hwy.ReduceSum(acc1)
			sum2 := hwy.ReduceSum(acc2)
			sum3 := hwy.ReduceSum(acc3)

			for ; p < k; p++ {
				sum0 += aRow0[p] * bRow[p]
				sum1 += aRow1[p] * bRow[p]
				sum2 += aRow2[p] * bRow[p]
				sum3 += aRow3[p] * bRow[p]
			}

			cRow0[j] = sum0
			cRow1[j] = sum1
			cRow2[j] = sum2
			cRow3[j] = sum3
		}
	}

	// Remaining rows (0-3)
	for ; i < n; i++ {
		aRow := a[i*k : (i+1)*k]
		cRow := c[i*m : (i+1)*m]

		for j := 0; j < m; j++ {
			bRow := b[j*k : (j+1)*k]
			acc := hwy.Zero[T]()

			var p int
			for p = 0; p+lanes <= k; p += lanes {
				acc = hwy.MulAdd(hwy.Load(aRow[p:]), hwy.Load(bRow[p:]), acc)
			}

			sum := hwy.ReduceSum(acc)
			for ; p < k; p++ {
				sum += aRow[p] * bRow[p]
			}

			cRow[j] = sum
		}
	}
}

// PairwiseFloat64 is the non-generic version of BasePairwise for float64.
func PairwiseFloat64(a, b, c []float64, n, m, k int) {
	BasePairwise(a, b, c, n, m, k)
}

// PairwiseFloat32 is the non-generic version of BasePairwise for float32.
func PairwiseFloat32(a, b, c []float32, n, m, k int) {
	BasePairwise(a, b, c, n, m, k)
}
