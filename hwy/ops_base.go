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

package hwy

// Load creates a vector from the first NumLanes elements of src.
// Lanes beyond len(src) are zero.
func Load[T Floats](src []T) Vec[T] {
	var v Vec[T]
	if len(src) >= NumLanes {
		v.data = [NumLanes]T(src[:NumLanes])
		return v
	}
	copy(v.data[:], src)
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{data: [NumLanes]T{
		a.data[0] + b.data[0],
		a.data[1] + b.data[1],
		a.data[2] + b.data[2],
		a.data[3] + b.data[3],
	}}
}

// MulAdd computes a*b + c lane-wise.
//
// The explicit conversion rounds each product to T before the addition, so
// the compiler never fuses the pair into one FMA. Results match a plain
// `sum += x*y` loop on every architecture.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return Vec[T]{data: [NumLanes]T{
		T(a.data[0]*b.data[0]) + c.data[0],
		T(a.data[1]*b.data[1]) + c.data[1],
		T(a.data[2]*b.data[2]) + c.data[2],
		T(a.data[3]*b.data[3]) + c.data[3],
	}}
}

// ReduceSum sums all lanes.
func ReduceSum[T Floats](v Vec[T]) T {
	return (v.data[0] + v.data[1]) + (v.data[2] + v.data[3])
}
