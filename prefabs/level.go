package prefabs

import (
	"fmt"
	"path"
	"strings"
)

type LevelObjectSpec struct {
	Kind   string   `yaml:"kind"`
	Center Vec3Spec `yaml:"center"`
	Size   Vec3Spec `yaml:"size"`
	Color  string   `yaml:"color"`
}

type LevelSpec struct {
	Name    string            `yaml:"name"`
	Spawn   Vec3Spec          `yaml:"spawn"`
	Yaw     float64           `yaml:"yaw"`
	Objects []LevelObjectSpec `yaml:"objects"`
}

// LoadLevelSpec loads a level by bare name ("liminal") or by path.
func LoadLevelSpec(name string) (LevelSpec, error) {
	file := name
	if !strings.HasSuffix(file, ".yaml") && !strings.HasSuffix(file, ".yml") {
		file = path.Join("levels", file+".yaml")
	}
	spec, err := LoadSpec[LevelSpec](file)
	if err != nil {
		return LevelSpec{}, err
	}
	if len(spec.Objects) == 0 {
		return LevelSpec{}, fmt.Errorf("prefabs: level %s has no objects", name)
	}
	return spec, nil
}
