package controller

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("controller: invalid config")

// Config holds the controller tuning. It is copied into the controller at
// construction and never mutated by Update.
type Config struct {
	Speed            float64
	JumpHeight       float64
	JumpImpulseScale float64
	Gravity          float64
	MaxJumps         int

	// GroundProbeDistance is how far below the probe origin a surface still
	// counts as ground.
	GroundProbeDistance float64
	// GroundSnapOffset is added to the contact height to place the origin.
	GroundSnapOffset float64
	// FootOffset is the distance from the origin down to the feet.
	FootOffset float64
	// ProbeLift raises the probe origin above the feet so the ray does not
	// start inside the surface it is standing on.
	ProbeLift float64

	// DampingRate is the per-second rate horizontal velocity decays at when
	// there is no movement input.
	DampingRate float64
	// StopEpsilon snaps damped horizontal velocity to zero below this speed.
	StopEpsilon float64

	LookSensitivity mgl64.Vec2

	// MaxFallSpeed caps downward velocity. Zero disables the cap.
	MaxFallSpeed float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Speed:               8,
		JumpHeight:          3,
		JumpImpulseScale:    3,
		Gravity:             40,
		MaxJumps:            2,
		GroundProbeDistance: 0.5,
		GroundSnapOffset:    1,
		FootOffset:          1,
		ProbeLift:           0.1,
		DampingRate:         10,
		StopEpsilon:         1e-3,
		LookSensitivity:     mgl64.Vec2{100, 100},
	}
}

// SnapProbeGap is the distance from the probe origin down to the contact
// surface while the controller stands snapped on it.
func (c Config) SnapProbeGap() float64 {
	return c.GroundSnapOffset - (c.FootOffset - c.ProbeLift)
}

// JumpImpulse is the vertical velocity a jump sets.
func (c Config) JumpImpulse() float64 {
	return c.JumpHeight * c.JumpImpulseScale
}

// Validate rejects non-finite, negative or mutually inconsistent values.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"speed", c.Speed},
		{"jump_height", c.JumpHeight},
		{"jump_impulse_scale", c.JumpImpulseScale},
		{"gravity", c.Gravity},
		{"ground_probe_distance", c.GroundProbeDistance},
		{"ground_snap_offset", c.GroundSnapOffset},
		{"foot_offset", c.FootOffset},
		{"probe_lift", c.ProbeLift},
		{"damping_rate", c.DampingRate},
		{"stop_epsilon", c.StopEpsilon},
		{"look_sensitivity_x", c.LookSensitivity.X()},
		{"look_sensitivity_y", c.LookSensitivity.Y()},
		{"max_fall_speed", c.MaxFallSpeed},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %v)", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.MaxJumps < 0 {
		return fmt.Errorf("%w: max_jumps must not be negative (got %d)", ErrInvalidConfig, c.MaxJumps)
	}
	if c.GroundProbeDistance == 0 {
		return fmt.Errorf("%w: ground_probe_distance must be positive", ErrInvalidConfig)
	}
	if c.ProbeLift > c.FootOffset {
		return fmt.Errorf("%w: probe_lift %v exceeds foot_offset %v", ErrInvalidConfig, c.ProbeLift, c.FootOffset)
	}
	// After a snap the contact must sit between the probe origin and the end
	// of the probe, or the next frame misses the surface it just landed on.
	if gap := c.SnapProbeGap(); gap < 0 || gap > c.GroundProbeDistance {
		return fmt.Errorf("%w: ground_snap_offset %v puts the contact %v below the probe origin, want [0, %v]",
			ErrInvalidConfig, c.GroundSnapOffset, gap, c.GroundProbeDistance)
	}
	return nil
}
