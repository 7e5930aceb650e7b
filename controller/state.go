package controller

import "github.com/go-gl/mathgl/mgl64"

// Phase is the grounding state of the controller.
type Phase uint8

const (
	Airborne Phase = iota
	Grounded
)

func (p Phase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	default:
		return "airborne"
	}
}

// State is the per-frame mutable state of a controller.
type State struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Yaw       float64 // degrees, [0, 360)
	Grounded  bool
	JumpCount int
}

func (s State) Phase() Phase {
	if s.Grounded {
		return Grounded
	}
	return Airborne
}

// Events reports what happened during one Update.
type Events uint8

const (
	Landed Events = 1 << iota
	LeftGround
	Jumped
	JumpRejected
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}
