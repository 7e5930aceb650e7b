package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is one frame of player input. Jump is edge-triggered: a sampler
// reports it for exactly one frame per physical press.
type Frame struct {
	Forward float64 // [-1, 1], +1 is forward
	Strafe  float64 // [-1, 1], +1 is right
	Jump    bool
	Look    mgl64.Vec2
}

// Sampler produces the input for the current frame. Sample is called at most
// once per frame; the returned Frame is owned by the caller.
type Sampler interface {
	Sample() Frame
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() Frame

func (f SamplerFunc) Sample() Frame {
	return f()
}

// Axis turns a pair of opposing digital buttons into a value in [-1, 1].
func Axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// ClampAxis limits an analog axis to [-1, 1] and zeroes values inside deadzone.
func ClampAxis(v, deadzone float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > -deadzone && v < deadzone {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
