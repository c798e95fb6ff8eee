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

// Package dot computes inner products of float vectors.
//
// The kernel accumulates NumLanes partial sums in an hwy.Vec and reduces them
// once at the end, then adds the scalar tail. When the two inputs differ in
// length, only the common prefix is used.
package dot

import "github.com/ajroetker/go-pairdot/hwy"

// BaseDot computes the dot product of a and b over min(len(a), len(b)) elements.
func BaseDot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))

	acc0 := hwy.Zero[T]()
	acc1 := hwy.Zero[T]()

	// Two accumulators hide the add latency of the dependent MulAdd chain.
	var p int
	for p = 0; p+2*hwy.NumLanes <= n; p += 2 * hwy.NumLanes {
		acc0 = hwy.MulAdd(hwy.Load(a[p:]), hwy.Load(b[p:]), acc0)
		acc1 = hwy.MulAdd(hwy.Load(a[p+hwy.NumLanes:]), hwy.Load(b[p+hwy.NumLanes:]), acc1)
	}
	for ; p+hwy.NumLanes <= n; p += hwy.NumLanes {
		acc0 = hwy.MulAdd(hwy.Load(a[p:]), hwy.Load(b[p:]), acc0)
	}

	sum := hwy.ReduceSum(hwy.Add(acc0, acc1))
	for ; p < n; p++ {
		sum += a[p] * b[p]
	}
	return sum
}

// DotFloat64 computes the dot product of two float64 slices.
func DotFloat64(a, b []float64) float64 {
	return BaseDot(a, b)
}
