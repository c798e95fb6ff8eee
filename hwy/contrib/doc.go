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

// Package contrib holds the kernels built on the hwy vector primitives.
//
// # Subpackages
//
//   - dot: the single-pair dot product
//   - pairdot: the pairwise dot-product matrix R = A·Bᵀ in several execution modes
//   - workerpool: a persistent worker pool for strip-parallel kernels and task submission
//
// # Pairwise Dot Products (hwy/contrib/pairdot)
//
//	import "github.com/ajroetker/go-pairdot/hwy/contrib/pairdot"
//
//	r, err := pairdot.Pairwise(a, b)                       // compiled kernel
//	r, err = pairdot.Compute(pairdot.ModeNaive, a, b)      // reference loops
//	r, err = pairdot.Compute(pairdot.ModeParallel, a, b,
//	    pairdot.WithPool(pool))                            // row strips on a pool
//
// # Dot Products (hwy/contrib/dot)
//
//	import "github.com/ajroetker/go-pairdot/hwy/contrib/dot"
//
//	d := dot.DotFloat64(x, y) // one row pair of ModeNaive
package contrib
