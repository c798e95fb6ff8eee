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
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// pairwiseReference computes C = A * B^T using naive triple loop.
// A is N×K, B is M×K, C is N×M.
func pairwiseReference(a, b, c []float64, n, m, k int) {
	for i := range n {
		for j := range m {
			var sum float64
			for p := range k {
				sum += a[i*k+p] * b[j*k+p]
			}
			c[i*m+j] = sum
		}
	}
}

func randomSlice(rng *rand.Rand, size int) []float64 {
	s := make([]float64, size)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

func sizeStr(n, m, k int) string {
	return fmt.Sprintf("%dx%dx%d", n, m, k)
}

func TestBasePairwiseSmall(t *testing.T) {
	// A = [[1, 2, 3], [4, 5, 6]] (2x3, K=3)
	// B = [[7, 8, 9], [10, 11, 12]] (2x3, M=2)
	// C[0,0] = 1*7 + 2*8 + 3*9 = 50
	// C[0,1] = 1*10 + 2*11 + 3*12 = 68
	// C[1,0] = 4*7 + 5*8 + 6*9 = 122
	// C[1,1] = 4*10 + 5*11 + 6*12 = 167
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}
	c := make([]float64, 4)
	want := []float64{50, 68, 122, 167}

	BasePairwise(a, b, c, 2, 2, 3)

	for i := range c {
		if c[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestBasePairwiseShapes(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	testCases := []struct {
		n, m, k int
	}{
		{1, 1, 1},
		{4, 4, 4},   // exactly one quad, one vector
		{5, 3, 10},  // quad plus remainder row, vector plus tail
		{7, 9, 3},   // k below one vector
		{8, 2, 0},   // empty feature dimension
		{33, 50, 10},
		{100, 64, 17},
	}

	for _, tc := range testCases {
		t.Run(sizeStr(tc.n, tc.m, tc.k), func(t *testing.T) {
			a := randomSlice(rng, tc.n*tc.k)
			b := randomSlice(rng, tc.m*tc.k)
			c := make([]float64, tc.n*tc.m)
			expected := make([]float64, tc.n*tc.m)

			pairwiseReference(a, b, expected, tc.n, tc.m, tc.k)
			BasePairwise(a, b, c, tc.n, tc.m, tc.k)

			var maxErr float64
			for i := range c {
				maxErr = max(maxErr, math.Abs(c[i]-expected[i]))
			}
			if tolerance := 1e-12 * float64(max(tc.k, 1)); maxErr > tolerance {
				t.Errorf("max error %e exceeds tolerance %e", maxErr, tolerance)
			}
		})
	}
}

func TestPairwiseFloat32(t *testing.T) {
	a := []float32{3, 4, 1, 0}
	c := make([]float32, 4)

	PairwiseFloat32(a, a, c, 2, 2, 2)

	want := []float32{25, 3, 3, 1}
	for i := range want {
		if c[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestNaivePairwiseMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	n, m, k := 13, 21, 10

	a := randomSlice(rng, n*k)
	b := randomSlice(rng, m*k)
	c := make([]float64, n*m)
	expected := make([]float64, n*m)

	pairwiseReference(a, b, expected, n, m, k)
	NaivePairwise(a, b, c, n, m, k, nil)

	for i := range c {
		if math.Abs(c[i]-expected[i]) > 1e-12*float64(k) {
			t.Errorf("c[%d] = %v, want %v", i, c[i], expected[i])
		}
	}
}

func TestBLASPairwiseDegenerate(t *testing.T) {
	c := []float64{9, 9, 9, 9, 9, 9}
	BLASPairwise(nil, nil, c, 2, 3, 0)
	for i, v := range c {
		if v != 0 {
			t.Errorf("c[%d] = %v, want 0 for k == 0", i, v)
		}
	}

	// Empty outputs must not reach Dgemm.
	BLASPairwise([]float64{1, 2}, nil, nil, 1, 0, 2)
	BLASPairwise(nil, []float64{1, 2}, nil, 0, 1, 2)
}

func TestKernelsPanicOnShortSlices(t *testing.T) {
	kernels := map[string]func(a, b, c []float64, n, m, k int){
		"compiled": PairwiseFloat64,
		"naive": func(a, b, c []float64, n, m, k int) {
			NaivePairwise(a, b, c, n, m, k, nil)
		},
		"blas": BLASPairwise,
	}

	for name, kernel := range kernels {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s kernel did not panic on a short C slice", name)
				}
			}()
			kernel(make([]float64, 4), make([]float64, 4), make([]float64, 3), 2, 2, 2)
		})
	}
}
