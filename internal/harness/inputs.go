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

package harness

import (
	"math/rand/v2"

	"github.com/ajroetker/go-pairdot/hwy/contrib/pairdot"
)

// Inputs are the three benchmark matrices. A is the left operand of both
// invocations; B and C are the two right operands.
type Inputs struct {
	A, B, C pairdot.Matrix
}

// GenerateInputs fills A, B and C, in that order, with uniform [0, 1) values
// drawn from one PCG stream seeded with cfg.Seed. Equal configs give equal inputs.
func GenerateInputs(cfg Config) Inputs {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	return Inputs{
		A: randomMatrix(rng, cfg.RowsA, cfg.Cols),
		B: randomMatrix(rng, cfg.RowsB, cfg.Cols),
		C: randomMatrix(rng, cfg.RowsC, cfg.Cols),
	}
}

func randomMatrix(rng *rand.Rand, rows, cols int) pairdot.Matrix {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return pairdot.Matrix{Rows: rows, Cols: cols, Data: data}
}
