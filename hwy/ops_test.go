package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	for i := range NumLanes {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]float32{7, 8})
	want := [NumLanes]float32{7, 8, 0, 0}

	if v.data != want {
		t.Errorf("Load(short) = %v, want %v", v.data, want)
	}
}

func TestZero(t *testing.T) {
	if v := Zero[float64](); v.data != [NumLanes]float64{} {
		t.Errorf("Zero() = %v, want all zero lanes", v.data)
	}
}

func TestAdd(t *testing.T) {
	result := Add(Load([]float32{1, 2, 3, 4}), Load([]float32{10, 20, 30, 40}))
	want := [NumLanes]float32{11, 22, 33, 44}

	if result.data != want {
		t.Errorf("Add() = %v, want %v", result.data, want)
	}
}

func TestMulAdd(t *testing.T) {
	a := Load([]float64{1, 2, 3, 4})
	b := Load([]float64{5, 6, 7, 8})
	c := Load([]float64{0.5, 0.5, 0.5, 0.5})
	result := MulAdd(a, b, c)

	want := []float64{5.5, 12.5, 21.5, 32.5}
	for i, w := range want {
		if math.Abs(result.data[i]-w) > 1e-12 {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, result.data[i], w)
		}
	}
}

func TestMulAddRoundsProduct(t *testing.T) {
	// (1+2^-30)(1-2^-30) = 1-2^-60 rounds to 1 in float64. A fused
	// multiply-add would keep the -2^-60 and return it instead of 0.
	x := 1 + math.Ldexp(1, -30)
	y := 1 - math.Ldexp(1, -30)
	lanes := []float64{x, x, x, x}
	result := MulAdd(Load(lanes), Load([]float64{y, y, y, y}), Load([]float64{-1, -1, -1, -1}))

	for i := range NumLanes {
		if result.data[i] != 0 {
			t.Errorf("MulAdd: lane %d: got %g, want 0 (product rounded before add)", i, result.data[i])
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Load([]float64{1.5, 2.5, 3, 4})
	if got := ReduceSum(v); got != 11 {
		t.Errorf("ReduceSum() = %v, want 11", got)
	}
}

func TestDispatchReport(t *testing.T) {
	t.Logf("Dispatch level: %s, width %d bytes", CurrentName(), CurrentWidth())

	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = unknown, want a detected level")
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if got, want := MaxLanes[float64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.value)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
