package vane

import (
	"math"
	"testing"
)

func TestVec3_Creation(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"positive", 3, 4, 5},
		{"negative", -1, -2, -3},
		{"mixed", -5, 10, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V3(tt.x, tt.y, tt.z)
			if v.X != tt.x || v.Y != tt.y || v.Z != tt.z {
				t.Errorf("V3(%v, %v, %v) = %v", tt.x, tt.y, tt.z, v)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"add", V3(1, 2, 3).Add(V3(4, 5, 6)), V3(5, 7, 9)},
		{"sub", V3(5, 7, 9).Sub(V3(4, 5, 6)), V3(1, 2, 3)},
		{"mul", V3(1, -2, 3).Mul(2), V3(2, -4, 6)},
		{"div", V3(2, -4, 6).Div(2), V3(1, -2, 3)},
		{"neg", V3(1, -2, 3).Neg(), V3(-1, 2, -3)},
		{"cross", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"lerp", V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.5), V3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-6) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec3_DivByZero(t *testing.T) {
	v := V3(1, -1, 0).Div(0)
	if !math.IsInf(float64(v.X), 1) || !math.IsInf(float64(v.Y), -1) {
		t.Errorf("expected infinities, got %v", v)
	}
	if !math.IsNaN(float64(v.Z)) {
		t.Errorf("expected NaN for 0/0, got %v", v.Z)
	}
}

func TestVec3_DotLength(t *testing.T) {
	v := V3(3, 4, 0)
	if got := v.Dot(V3(1, 1, 1)); got != 7 {
		t.Errorf("Dot = %v, want 7", got)
	}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	got := V3(0, 3, 4).Normalize()
	if !got.Approx(V3(0, 0.6, 0.8), 1e-6) {
		t.Errorf("Normalize = %v, want (0, 0.6, 0.8)", got)
	}
}
