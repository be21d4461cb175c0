package config

import (
	"strings"
	"testing"

	"github.com/ecoskey/vane"
)

const breezeDoc = `
fields:
  - label: breeze
    size: {x: 2, y: 2, z: 2}
    generators:
      - type: uniform
        velocity: [3, 0, 0]
        density: 2
`

func TestParse_And_Build(t *testing.T) {
	cfg, err := Parse([]byte(breezeDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Fields) != 1 {
		t.Fatalf("parsed %d fields, want 1", len(cfg.Fields))
	}

	fields, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	f := fields[0]
	if f.Label() != "breeze" {
		t.Errorf("label = %q", f.Label())
	}
	if f.Size() != (vane.Size3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("size = %v", f.Size())
	}

	// velocity 3 at density 2 -> momentum 6.
	if err := f.Modify(func(s *vane.EditSession) error {
		got := s.Get(vane.Coord{X: 1, Y: 1, Z: 1})
		want := vane.NewFlowVector(vane.V3(6, 0, 0), 2)
		if !got.Approx(want, 1e-2) {
			t.Errorf("texel = %+v, want %+v", got, want)
		}
		return nil
	}); err != nil {
		t.Fatalf("Modify failed: %v", err)
	}
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	doc := `
fields:
  - label: typo
    size: {x: 1, y: 1, z: 1}
    generatorz: []
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("expected unknown key to be rejected")
	}
}

func TestGeneratorConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		gc   GeneratorConfig
		want string
	}{
		{"missing_type", GeneratorConfig{}, "type missing"},
		{"unknown_type", GeneratorConfig{Type: "vortex"}, "unknown generator type"},
		{"uniform_empty", GeneratorConfig{Type: "uniform"}, "requires momentum or velocity"},
		{
			"uniform_both",
			GeneratorConfig{
				Type:     "uniform",
				Momentum: &[3]float32{1, 0, 0},
				Velocity: &[3]float32{1, 0, 0},
			},
			"not both",
		},
		{
			"negative_frequency",
			GeneratorConfig{Type: "turbulence", Frequency: -1},
			"frequency must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := FieldConfig{Generators: []GeneratorConfig{tt.gc}}
			_, err := fc.Generator()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestGeneratorConfig_Modifiers(t *testing.T) {
	amplify := float32(2)
	fc := FieldConfig{
		Generators: []GeneratorConfig{
			{
				Type:     "uniform",
				Momentum: &[3]float32{1, 0, 0},
				Density:  1,
				Amplify:  &amplify,
			},
			{
				Type:     "uniform",
				Momentum: &[3]float32{0, 1, 0},
				Density:  1,
			},
		},
	}

	gen, err := fc.Generator()
	if err != nil {
		t.Fatalf("Generator failed: %v", err)
	}
	got := gen.Generate(vane.Vec3{})
	want := vane.NewFlowVector(vane.V3(2, 1, 0), 3)
	if !got.Approx(want, 1e-6) {
		t.Errorf("generated %+v, want %+v", got, want)
	}
}

func TestGeneratorConfig_TurbulenceDefaults(t *testing.T) {
	fc := FieldConfig{
		Generators: []GeneratorConfig{
			{Type: "turbulence", Seed: 7, Density: 1},
		},
	}
	gen, err := fc.Generator()
	if err != nil {
		t.Fatalf("Generator failed: %v", err)
	}
	// Defaulted frequency of 1 matches an explicit 1.
	explicit := vane.Turbulence(7, 1, 1)
	p := vane.V3(1, 2, 3)
	if gen.Generate(p) != explicit.Generate(p) {
		t.Error("defaulted frequency differs from explicit frequency 1")
	}
}

func TestEmptyGeneratorStack(t *testing.T) {
	fc := FieldConfig{Label: "still", Size: SizeConfig{X: 2, Y: 2, Z: 2}}
	f, err := fc.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := f.Modify(func(s *vane.EditSession) error {
		if got := s.Get(vane.Coord{}); got != (vane.FlowVector{}) {
			t.Errorf("empty stack texel = %+v, want zero", got)
		}
		return nil
	}); err != nil {
		t.Fatalf("Modify failed: %v", err)
	}
}
