package vane

// Generator produces a flow vector for any 3D position. Generators are
// the authoring primitive for flow fields: a field is filled by sampling
// a generator once per grid cell.
//
// Generators compose without inspecting each other's internals; see Sum,
// Transformed and Amplified. A generator may carry internal state (see
// Turbulence); callers invoke Generate once per sampled position in an
// order of their choosing, and a generator must not be assumed safe for
// concurrent calls unless it documents otherwise.
type Generator interface {
	Generate(position Vec3) FlowVector
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(position Vec3) FlowVector

// Generate calls the function itself.
func (fn GeneratorFunc) Generate(position Vec3) FlowVector {
	return fn(position)
}

// Uniform returns a generator that ignores position and always produces v.
func Uniform(v FlowVector) Generator {
	return uniform{value: v}
}

type uniform struct {
	value FlowVector
}

func (u uniform) Generate(Vec3) FlowVector {
	return u.value
}

// Sum returns a generator that adds the outputs of the given generators in
// order. Any number of generators may be composed; summing zero generators
// yields the zero flow vector everywhere.
func Sum(generators ...Generator) Generator {
	return &sum{generators: generators}
}

type sum struct {
	generators []Generator
}

func (s *sum) Generate(position Vec3) FlowVector {
	var vector FlowVector
	for _, gen := range s.generators {
		vector = vector.Add(gen.Generate(position))
	}
	return vector
}

// Transformed returns a generator that samples inner in its own local
// space: each world-space position is mapped through the inverse of
// transform before delegating. The inverse is computed once here, not per
// sample.
func Transformed(inner Generator, transform Affine3) Generator {
	return &transformed{
		inner:        inner,
		worldToLocal: transform.Invert(),
	}
}

type transformed struct {
	inner        Generator
	worldToLocal Affine3
}

func (t *transformed) Generate(position Vec3) FlowVector {
	return t.inner.Generate(t.worldToLocal.TransformPoint(position))
}

// Amplified returns a generator whose output is inner's output with all
// four lanes multiplied by multiplier.
func Amplified(inner Generator, multiplier float32) Generator {
	return &amplified{inner: inner, multiplier: multiplier}
}

type amplified struct {
	inner      Generator
	multiplier float32
}

func (a *amplified) Generate(position Vec3) FlowVector {
	return a.inner.Generate(position).Scale(a.multiplier)
}
