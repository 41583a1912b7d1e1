package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayfieldSpec struct {
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Respawn PointSpec `yaml:"respawn"`
}

func LoadPlayfieldSpec() (*PlayfieldSpec, error) {
	spec, err := LoadSpec[PlayfieldSpec]("playfield.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: playfield.yaml: size %vx%v must be positive", spec.Width, spec.Height)
	}
	return &spec, nil
}

// GeometrySpec lists triangle templates by name.
type GeometrySpec struct {
	Templates map[string][]PointSpec `yaml:"templates"`
}

func LoadGeometrySpec() (*GeometrySpec, error) {
	spec, err := LoadSpec[GeometrySpec]("geometry.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BodySpec struct {
	Name      string        `yaml:"name"`
	Geometry  string        `yaml:"geometry"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Speed     float64       `yaml:"speed"`
	Direction float64       `yaml:"direction"`
}

func LoadBodySpec(filename string) (*BodySpec, error) {
	spec, err := LoadSpec[BodySpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Geometry == "" {
		return nil, fmt.Errorf("prefabs: %s: geometry is required", filename)
	}
	return &spec, nil
}

type BindingSpec struct {
	Key       string  `yaml:"key"`
	Paddle    string  `yaml:"paddle"`
	Direction float64 `yaml:"direction"`
}

type ControlsSpec struct {
	PaddleSpeed float64       `yaml:"paddle_speed"`
	Bindings    []BindingSpec `yaml:"bindings"`
}

func LoadControlsSpec() (*ControlsSpec, error) {
	spec, err := LoadSpec[ControlsSpec]("controls.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
