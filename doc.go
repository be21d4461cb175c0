// Package vane models volumetric fluid-flow fields for simulated flow
// sensors and GPU sampling.
//
// # Overview
//
// A flow field is a 3D grid of FlowVector values (momentum density plus
// density) stored in a compressed half-precision texel format. Fields are
// authored procedurally through composable generators and mutated through
// scoped edit sessions that decompress the grid, apply changes, and are
// guaranteed to recompress on release.
//
// # Quick Start
//
//	import "github.com/ecoskey/vane"
//
//	// A steady breeze along +X with density 1.2 kg/m^3.
//	breeze := vane.Uniform(vane.FromVelocity(vane.V3(3, 0, 0), 1.2))
//
//	field := vane.FromGenerator(vane.Size3{X: 32, Y: 32, Z: 32}, breeze).
//		WithLabel("breeze")
//
//	// Point edits go through a session; the compressed storage is
//	// rewritten when the callback returns.
//	err := field.Modify(func(s *vane.EditSession) error {
//		s.Set(vane.Coord{X: 16, Y: 16, Z: 16}, vane.FlowVector{Density: 2})
//		return nil
//	})
//
// # Generators
//
// Generators map a 3D position to a FlowVector and compose without
// inspecting each other: Sum adds any number of generators, Transformed
// re-maps sample positions through the inverse of an affine transform,
// Amplified scales output, and Turbulence produces noise-driven flow.
// Any func(Vec3) FlowVector is usable directly via GeneratorFunc.
//
// # GPU mirroring
//
// The render subpackage synchronizes fields into sampleable 3D textures,
// reusing allocations across passes when the grid size is unchanged.
package vane
