// Package config provides declarative authoring of flow fields.
//
// A YAML document names fields, their grid sizes, and an ordered stack of
// generators. Stacks build directly onto the vane generator algebra:
// entries are summed, and each entry may carry an affine placement and an
// amplitude multiplier.
//
//	fields:
//	  - label: breeze
//	    size: {x: 32, y: 32, z: 8}
//	    generators:
//	      - type: uniform
//	        velocity: [3, 0, 0]
//	        density: 1.2
//	      - type: turbulence
//	        seed: 7
//	        frequency: 0.05
//	        density: 1.2
//	        amplify: 0.25
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecoskey/vane"
)

// Config is the root of a field authoring document.
type Config struct {
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig describes one flow field to construct.
type FieldConfig struct {
	Label      string            `yaml:"label"`
	Size       SizeConfig        `yaml:"size"`
	Generators []GeneratorConfig `yaml:"generators"`
}

// SizeConfig holds grid extents.
type SizeConfig struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
	Z uint32 `yaml:"z"`
}

// GeneratorConfig describes one entry of a field's generator stack.
//
// Type selects the base generator; the remaining keys parameterize it.
// Translate, Scale and the rotations place the generator in field space,
// and Amplify scales its output. Entries in a stack are summed.
type GeneratorConfig struct {
	Type string `yaml:"type"`

	// uniform: exactly one of Momentum or Velocity, plus Density.
	Momentum *[3]float32 `yaml:"momentum"`
	Velocity *[3]float32 `yaml:"velocity"`
	Density  float32     `yaml:"density"`

	// turbulence: noise seed and spatial frequency (default 1).
	Seed      int64   `yaml:"seed"`
	Frequency float32 `yaml:"frequency"`

	// Modifiers, valid on any type.
	Amplify   *float32    `yaml:"amplify"`
	Translate *[3]float32 `yaml:"translate"`
	Scale     *[3]float32 `yaml:"scale"`
	RotateX   *float32    `yaml:"rotate_x"` // radians
	RotateY   *float32    `yaml:"rotate_y"`
	RotateZ   *float32    `yaml:"rotate_z"`
}

// Parse decodes a field authoring document. Unknown keys are errors, so
// typos in hand-written documents surface instead of silently vanishing.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse fields document: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses a field authoring document from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Build constructs every field in the document.
func (c *Config) Build() ([]*vane.FlowField, error) {
	fields := make([]*vane.FlowField, 0, len(c.Fields))
	for i, fc := range c.Fields {
		field, err := fc.Build()
		if err != nil {
			return nil, fmt.Errorf("config: field %d (%q): %w", i, fc.Label, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Build constructs the field: a generator-filled grid with the configured
// label. An empty generator stack yields a zero-filled field.
func (fc FieldConfig) Build() (*vane.FlowField, error) {
	gen, err := fc.Generator()
	if err != nil {
		return nil, err
	}
	size := vane.Size3{X: fc.Size.X, Y: fc.Size.Y, Z: fc.Size.Z}
	return vane.FromGenerator(size, gen).WithLabel(fc.Label), nil
}

// Generator builds the field's composed generator: the sum of every stack
// entry with its modifiers applied.
func (fc FieldConfig) Generator() (vane.Generator, error) {
	gens := make([]vane.Generator, 0, len(fc.Generators))
	for i, gc := range fc.Generators {
		gen, err := gc.build()
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		gens = append(gens, gen)
	}
	return vane.Sum(gens...), nil
}

func (gc GeneratorConfig) build() (vane.Generator, error) {
	var gen vane.Generator
	switch gc.Type {
	case "uniform":
		switch {
		case gc.Momentum != nil && gc.Velocity != nil:
			return nil, fmt.Errorf("uniform takes momentum or velocity, not both")
		case gc.Momentum != nil:
			gen = vane.Uniform(vane.NewFlowVector(vec3Of(*gc.Momentum), gc.Density))
		case gc.Velocity != nil:
			gen = vane.Uniform(vane.FromVelocity(vec3Of(*gc.Velocity), gc.Density))
		default:
			return nil, fmt.Errorf("uniform requires momentum or velocity")
		}

	case "turbulence":
		frequency := gc.Frequency
		if frequency == 0 {
			frequency = 1
		}
		if frequency < 0 {
			return nil, fmt.Errorf("turbulence frequency must be positive, got %v", frequency)
		}
		gen = vane.Turbulence(gc.Seed, frequency, gc.Density)

	case "":
		return nil, fmt.Errorf("generator type missing")
	default:
		return nil, fmt.Errorf("unknown generator type %q", gc.Type)
	}

	if m, ok := gc.transform(); ok {
		gen = vane.Transformed(gen, m)
	}
	if gc.Amplify != nil {
		gen = vane.Amplified(gen, *gc.Amplify)
	}
	return gen, nil
}

// transform assembles the entry's placement: scale, then rotation about
// X, Y, Z in that order, then translation.
func (gc GeneratorConfig) transform() (vane.Affine3, bool) {
	m := vane.Identity3()
	set := false

	if gc.Scale != nil {
		m = vane.Scale3(vec3Of(*gc.Scale))
		set = true
	}
	if gc.RotateX != nil {
		m = vane.RotateX(*gc.RotateX).Multiply(m)
		set = true
	}
	if gc.RotateY != nil {
		m = vane.RotateY(*gc.RotateY).Multiply(m)
		set = true
	}
	if gc.RotateZ != nil {
		m = vane.RotateZ(*gc.RotateZ).Multiply(m)
		set = true
	}
	if gc.Translate != nil {
		m = vane.Translate3(vec3Of(*gc.Translate)).Multiply(m)
		set = true
	}
	return m, set
}

func vec3Of(a [3]float32) vane.Vec3 {
	return vane.V3(a[0], a[1], a[2])
}
