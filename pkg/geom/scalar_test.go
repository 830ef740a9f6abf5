package geom

import (
	"math"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf[float64](); got != Float64 {
		t.Errorf("KindOf[float64]() = %v, want %v", got, Float64)
	}
	if got := KindOf[float32](); got != Float32 {
		t.Errorf("KindOf[float32]() = %v, want %v", got, Float32)
	}
	if got := KindOf[int32](); got != Int32 {
		t.Errorf("KindOf[int32]() = %v, want %v", got, Int32)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Float64, "float64"},
		{Float32, "float32"},
		{Int32, "int32"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFromFloat64Int32(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{1.9, 1},
		{-1.9, -1},
		{2.5, 2},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
		{1e12, math.MaxInt32},
		{-1e12, math.MinInt32},
	}
	for _, tt := range tests {
		if got := FromFloat64[int32](tt.in); got != tt.want {
			t.Errorf("FromFloat64[int32](%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromFloat64Floats(t *testing.T) {
	if got := FromFloat64[float64](2.6); got != 2.6 {
		t.Errorf("FromFloat64[float64](2.6) = %v, want 2.6", got)
	}
	if got := FromFloat64[float32](2.5); got != 2.5 {
		t.Errorf("FromFloat64[float32](2.5) = %v, want 2.5", got)
	}
	if got := FromFloat64[float32](math.NaN()); !math.IsNaN(float64(got)) {
		t.Errorf("FromFloat64[float32](NaN) = %v, want NaN", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Convert[float64](int32(7)); got != 7 {
		t.Errorf("Convert[float64](int32(7)) = %v, want 7", got)
	}
	if got := Convert[int32](float32(-3.75)); got != -3 {
		t.Errorf("Convert[int32](float32(-3.75)) = %v, want -3", got)
	}
	if got := Convert[float32](float64(0.25)); got != 0.25 {
		t.Errorf("Convert[float32](0.25) = %v, want 0.25", got)
	}
	if got := Convert[int32](int32(math.MinInt32)); got != math.MinInt32 {
		t.Errorf("Convert[int32](MinInt32) = %v, want MinInt32", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := Clamp[int32](-7, -5, 5); got != -5 {
		t.Errorf("Clamp[int32](-7, -5, 5) = %v, want -5", got)
	}
}
