package vane

import "testing"

func TestTurbulence_Deterministic(t *testing.T) {
	a := Turbulence(42, 0.1, 1.2)
	b := Turbulence(42, 0.1, 1.2)

	points := []Vec3{{}, V3(1, 2, 3), V3(-10, 0.5, 100)}
	for _, p := range points {
		if a.Generate(p) != b.Generate(p) {
			t.Errorf("same seed diverged at %v", p)
		}
	}
}

func TestTurbulence_SeedsDecorrelated(t *testing.T) {
	a := Turbulence(1, 0.1, 1)
	b := Turbulence(2, 0.1, 1)

	same := 0
	points := []Vec3{V3(1, 2, 3), V3(4, 5, 6), V3(-7, 8, -9)}
	for _, p := range points {
		if a.Generate(p) == b.Generate(p) {
			same++
		}
	}
	if same == len(points) {
		t.Error("different seeds produced identical fields")
	}
}

func TestTurbulence_Density(t *testing.T) {
	const density = 2.5
	gen := Turbulence(7, 0.05, density)
	v := gen.Generate(V3(3, 1, 4))
	if v.Density != density {
		t.Errorf("Density = %v, want %v", v.Density, density)
	}
	// Momentum is velocity*density by construction, so velocity holds
	// the raw noise amplitudes, which OpenSimplex bounds to roughly [-1, 1].
	vel := v.Velocity()
	for _, lane := range []float32{vel.X, vel.Y, vel.Z} {
		if lane < -1.5 || lane > 1.5 {
			t.Errorf("noise velocity lane out of range: %v", lane)
		}
	}
}
