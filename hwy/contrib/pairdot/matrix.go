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
)

// Matrix is a dense row-major matrix of float64 values.
// Row i occupies Data[i*Cols : (i+1)*Cols].
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// New allocates a zero-filled rows×cols matrix.
func New(rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 || sizeOverflows(rows, cols) {
		return Matrix{}, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrBadShape)
	}
	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// FromRows copies a slice of equal-length rows into a Matrix.
// An empty slice gives a 0×0 matrix.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}

	cols := len(rows[0])
	m := Matrix{Rows: len(rows), Cols: cols, Data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("FromRows: row %d has %d columns, row 0 has %d: %w",
				i, len(row), cols, ErrBadShape)
		}
		copy(m.Data[i*cols:], row)
	}
	return m, nil
}

// Validate reports whether the dimensions and storage agree.
func (m Matrix) Validate() error {
	if m.Rows < 0 || m.Cols < 0 || sizeOverflows(m.Rows, m.Cols) {
		return fmt.Errorf("matrix %dx%d: %w", m.Rows, m.Cols, ErrBadShape)
	}
	if len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("matrix %dx%d has %d elements: %w", m.Rows, m.Cols, len(m.Data), ErrBadShape)
	}
	return nil
}

// sizeOverflows reports whether rows*cols does not fit in an int.
// Both arguments must be non-negative.
func sizeOverflows(rows, cols int) bool {
	return cols != 0 && rows > math.MaxInt/cols
}

// Shape returns (Rows, Cols).
func (m Matrix) Shape() (rows, cols int) {
	return m.Rows, m.Cols
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a subslice of the matrix storage (not a copy).
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// ToRows copies the matrix into a slice of rows.
func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}

// String formats the shape, e.g. "1000x10".
func (m Matrix) String() string {
	return fmt.Sprintf("%dx%d", m.Rows, m.Cols)
}
