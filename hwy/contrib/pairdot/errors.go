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

import "errors"

// Every message is prefixed with "pairdot: ". Callers match with errors.Is;
// returned errors wrap these with the offending shapes.
var (
	// ErrDimensionMismatch is returned when the two operands disagree on the
	// feature dimension (column count).
	ErrDimensionMismatch = errors.New("pairdot: dimension mismatch")

	// ErrBadShape is returned for negative dimensions, ragged rows, or storage
	// whose length is not Rows*Cols.
	ErrBadShape = errors.New("pairdot: invalid shape")

	// ErrUnknownMode is returned by ParseMode and Compute for an unrecognised
	// execution mode.
	ErrUnknownMode = errors.New("pairdot: unknown mode")
)
