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

// Package hwy provides the portable vector values used by the pairdot kernels,
// plus a report of the SIMD level the host CPU offers.
//
// Vectors are small fixed-width values. Arithmetic on them is lane-wise over
// plain arrays, so a loop written against Vec compiles to straight-line code
// with no allocation and the accumulators stay in registers.
//
// The lane count is fixed at NumLanes on every CPU. The detected DispatchLevel
// does not select a kernel; it is reported by the pairdotbench cpu subcommand
// and in the benchmark header so timings can be read against the hardware.
//
// Basic usage:
//
//	acc := hwy.Zero[float64]()
//	for p := 0; p+hwy.NumLanes <= k; p += hwy.NumLanes {
//		acc = hwy.MulAdd(hwy.Load(a[p:]), hwy.Load(b[p:]), acc)
//	}
//	sum := hwy.ReduceSum(acc)
package hwy

// NumLanes is the number of lanes held by every Vec.
const NumLanes = 4

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Vec is a portable vector handle of NumLanes elements.
//
// Vec instances should not be created directly; use Load or Zero instead.
type Vec[T Floats] struct {
	data [NumLanes]T
}
