package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	spec, err := LoadSpec[EntityBuildSpec](filename)
	if err != nil {
		return EntityBuildSpec{}, err
	}
	if spec.Name == "" {
		return EntityBuildSpec{}, fmt.Errorf("prefabs: %s: missing name", filename)
	}
	return spec, nil
}

// DecodeComponentSpec decodes raw over a copy of base, so fields missing from
// raw keep their base values.
func DecodeComponentSpec[T any](raw any, base T) (T, error) {
	out := base
	if raw == nil {
		return out, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return base, err
	}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return base, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

type PlayerComponentSpec struct {
	Size       Vec3Spec       `yaml:"size"`
	Controller ControllerSpec `yaml:"controller"`
}

type CameraComponentSpec struct {
	Target      string   `yaml:"target"`
	Offset      Vec3Spec `yaml:"offset"`
	Pitch       float64  `yaml:"pitch"`
	Sensitivity float64  `yaml:"sensitivity"`
}
