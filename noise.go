package vane

import "github.com/ojrac/opensimplex-go"

// Turbulence returns a stateful generator producing noise-driven flow.
//
// Three decorrelated OpenSimplex noise channels drive the velocity
// components; the result is converted to momentum density at the given
// fluid density. Frequency scales sample positions: higher frequencies
// produce finer eddies. The same seed always reproduces the same field.
//
// The returned generator carries noise tables but no per-call mutable
// state, so it is safe to share across sequential fills; it does not
// document thread safety for concurrent sampling.
func Turbulence(seed int64, frequency, density float32) Generator {
	return &turbulence{
		channels: [3]opensimplex.Noise{
			opensimplex.New(seed),
			opensimplex.New(seed + 1),
			opensimplex.New(seed + 2),
		},
		frequency: frequency,
		density:   density,
	}
}

type turbulence struct {
	channels  [3]opensimplex.Noise
	frequency float32
	density   float32
}

func (t *turbulence) Generate(position Vec3) FlowVector {
	p := position.Mul(t.frequency)
	velocity := Vec3{
		X: float32(t.channels[0].Eval3(float64(p.X), float64(p.Y), float64(p.Z))),
		Y: float32(t.channels[1].Eval3(float64(p.X), float64(p.Y), float64(p.Z))),
		Z: float32(t.channels[2].Eval3(float64(p.X), float64(p.Y), float64(p.Z))),
	}
	return FromVelocity(velocity, t.density)
}
