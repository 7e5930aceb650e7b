package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/controller"
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

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// ControllerSpec is the YAML shape of controller.Config. Decoding into a spec
// built by ControllerSpecFrom keeps every field the document leaves out.
type ControllerSpec struct {
	Speed               float64  `yaml:"speed"`
	JumpHeight          float64  `yaml:"jump_height"`
	JumpImpulseScale    float64  `yaml:"jump_impulse_scale"`
	Gravity             float64  `yaml:"gravity"`
	MaxJumps            int      `yaml:"max_jumps"`
	GroundProbeDistance float64  `yaml:"ground_probe_distance"`
	GroundSnapOffset    float64  `yaml:"ground_snap_offset"`
	FootOffset          float64  `yaml:"foot_offset"`
	ProbeLift           float64  `yaml:"probe_lift"`
	DampingRate         float64  `yaml:"damping_rate"`
	StopEpsilon         float64  `yaml:"stop_epsilon"`
	LookSensitivity     Vec2Spec `yaml:"look_sensitivity"`
	MaxFallSpeed        float64  `yaml:"max_fall_speed"`
}

func ControllerSpecFrom(cfg controller.Config) ControllerSpec {
	return ControllerSpec{
		Speed:               cfg.Speed,
		JumpHeight:          cfg.JumpHeight,
		JumpImpulseScale:    cfg.JumpImpulseScale,
		Gravity:             cfg.Gravity,
		MaxJumps:            cfg.MaxJumps,
		GroundProbeDistance: cfg.GroundProbeDistance,
		GroundSnapOffset:    cfg.GroundSnapOffset,
		FootOffset:          cfg.FootOffset,
		ProbeLift:           cfg.ProbeLift,
		DampingRate:         cfg.DampingRate,
		StopEpsilon:         cfg.StopEpsilon,
		LookSensitivity:     Vec2Spec{X: cfg.LookSensitivity.X(), Y: cfg.LookSensitivity.Y()},
		MaxFallSpeed:        cfg.MaxFallSpeed,
	}
}

func (s ControllerSpec) Config() controller.Config {
	return controller.Config{
		Speed:               s.Speed,
		JumpHeight:          s.JumpHeight,
		JumpImpulseScale:    s.JumpImpulseScale,
		Gravity:             s.Gravity,
		MaxJumps:            s.MaxJumps,
		GroundProbeDistance: s.GroundProbeDistance,
		GroundSnapOffset:    s.GroundSnapOffset,
		FootOffset:          s.FootOffset,
		ProbeLift:           s.ProbeLift,
		DampingRate:         s.DampingRate,
		StopEpsilon:         s.StopEpsilon,
		LookSensitivity:     s.LookSensitivity.Vec(),
		MaxFallSpeed:        s.MaxFallSpeed,
	}
}

// LoadTuning reads a controller tuning document and lays it over base. The
// result is validated.
func LoadTuning(filename string, base controller.Config) (controller.Config, error) {
	data, err := Load(filename)
	if err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeTuning(data, base)
}

func DecodeTuning(data []byte, base controller.Config) (controller.Config, error) {
	spec := ControllerSpecFrom(base)
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	cfg := spec.Config()
	if err := cfg.Validate(); err != nil {
		return controller.Config{}, err
	}
	return cfg, nil
}
