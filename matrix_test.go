package vane

import (
	"math"
	"testing"
)

func TestAffine3_Identity(t *testing.T) {
	m := Identity3()
	if !m.IsIdentity() {
		t.Error("Identity3 should be identity")
	}
	p := V3(1, 2, 3)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform moved point: %v", got)
	}
}

func TestAffine3_TransformPoint(t *testing.T) {
	quarter := float32(math.Pi / 2)

	tests := []struct {
		name   string
		m      Affine3
		p      Vec3
		expect Vec3
	}{
		{"translate", Translate3(V3(1, 2, 3)), V3(1, 1, 1), V3(2, 3, 4)},
		{"scale", Scale3(V3(2, 3, 4)), V3(1, 1, 1), V3(2, 3, 4)},
		{"rotate_x", RotateX(quarter), V3(0, 1, 0), V3(0, 0, 1)},
		{"rotate_y", RotateY(quarter), V3(0, 0, 1), V3(1, 0, 0)},
		{"rotate_z", RotateZ(quarter), V3(1, 0, 0), V3(0, 1, 0)},
		{
			"scale_then_translate",
			Translate3(V3(10, 0, 0)).Multiply(Scale3(V3(2, 2, 2))),
			V3(1, 1, 1),
			V3(12, 2, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.Approx(tt.expect, 1e-6) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestAffine3_TransformVector_IgnoresTranslation(t *testing.T) {
	m := Translate3(V3(10, 20, 30))
	v := V3(1, 2, 3)
	if got := m.TransformVector(v); got != v {
		t.Errorf("TransformVector applied translation: %v", got)
	}
}

func TestAffine3_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Affine3
	}{
		{"translate", Translate3(V3(4, -5, 6))},
		{"scale", Scale3(V3(2, 4, 0.5))},
		{"rotate", RotateY(0.7)},
		{
			"composite",
			Translate3(V3(1, 2, 3)).
				Multiply(RotateZ(0.3)).
				Multiply(Scale3(V3(2, 2, 2))),
		},
	}

	points := []Vec3{V3(0, 0, 0), V3(1, 2, 3), V3(-4, 0.5, 9)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			for _, p := range points {
				back := inv.TransformPoint(tt.m.TransformPoint(p))
				if !back.Approx(p, 1e-4) {
					t.Errorf("inverse round trip of %v = %v", p, back)
				}
			}
		})
	}
}

func TestAffine3_InvertSingular(t *testing.T) {
	// A zero scale on any axis is not invertible; Invert falls back to
	// the identity.
	m := Scale3(V3(1, 0, 1))
	if got := m.Invert(); !got.IsIdentity() {
		t.Errorf("Invert(singular) = %v, want identity", got)
	}
}
