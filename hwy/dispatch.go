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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel names the widest SIMD instruction set the host CPU offers.
// It is informational: the kernels use NumLanes lanes whatever the level.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
	DispatchSVE
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
	DispatchSVE:    "sve",
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// Detected once by init in the per-architecture dispatch files.
var (
	currentLevel DispatchLevel
	currentWidth int // register width in bytes
)

// CurrentLevel returns the detected level.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the register width of the detected level in bytes:
// 16 for SSE2 and NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the detected level's name, e.g. "avx2".
func CurrentName() string { return currentLevel.String() }

// NoSimdEnv reports whether HWY_NO_SIMD asks for the scalar level.
// Values parse as booleans; any other non-empty value counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many elements of T one register of the detected width
// holds, e.g. 4 float64 lanes at AVX2.
func MaxLanes[T Floats]() int {
	var zero T
	return currentWidth / int(unsafe.Sizeof(zero))
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
