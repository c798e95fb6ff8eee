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

// Package pairdot computes pairwise dot-product matrices.
//
// For A (n×k) and B (m×k), both row-major with the feature dimension k last,
// the result R is n×m with R[i,j] = dot(A[i,:], B[j,:]), i.e. R = A·Bᵀ.
//
// The same contract is offered by several execution strategies that differ
// only in speed:
//
//   - ModeNaive: two explicit loops over row pairs, one dot.DotFloat64 each,
//     with an optional per-row observer for progress reporting.
//   - ModeCompiled: a register-blocked kernel that handles four rows of A per
//     pass and accumulates along k in hwy.Vec lanes.
//   - ModeParallel: the compiled kernel over row strips spread across a
//     workerpool.Pool.
//   - ModeBLAS: gonum's Dgemm with B transposed.
//
// Example usage:
//
//	a, _ := pairdot.FromRows([][]float64{{1, 0}, {0, 1}})
//	b, _ := pairdot.FromRows([][]float64{{1, 1}, {2, 2}})
//	r, err := pairdot.Pairwise(a, b) // [[1 2] [1 2]]
//
// The matrix-level functions validate shapes and return errors; the slice
// kernels (BasePairwise, NaivePairwise, ParallelPairwise, BLASPairwise) trust
// their arguments and panic on short buffers.
package pairdot
