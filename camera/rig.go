// Package camera implements a trailing third-person camera that follows a
// controller's read-only pose and owns its own pitch.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MinPitch = -90.0
	MaxPitch = 90.0
)

// Target is the pose the rig follows.
type Target struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees
}

// Pose is the camera placement for one frame.
type Pose struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Yaw    float64
	Pitch  float64
}

// Rig places the camera at Offset in the target's yaw frame (x right, y up,
// z forward) and tilts it by Pitch degrees, positive looking down.
type Rig struct {
	Offset      mgl64.Vec3
	Sensitivity float64
	pitch       float64
}

func NewRig(offset mgl64.Vec3, pitch, sensitivity float64) *Rig {
	r := &Rig{Offset: offset, Sensitivity: sensitivity}
	r.SetPitch(pitch)
	return r
}

// DefaultRig trails 15 units behind and 8 above, tilted 20 degrees down.
func DefaultRig() *Rig {
	return NewRig(mgl64.Vec3{0, 8, -15}, 20, 100)
}

func (r *Rig) Pitch() float64 {
	return r.pitch
}

// SetPitch stores pitch clamped to [MinPitch, MaxPitch]. NaN is ignored.
func (r *Rig) SetPitch(pitch float64) {
	if math.IsNaN(pitch) {
		return
	}
	r.pitch = mgl64.Clamp(pitch, MinPitch, MaxPitch)
}

// Update applies vertical look input and returns the pose for target. A
// non-positive or non-finite dt leaves the pitch unchanged.
func (r *Rig) Update(target Target, lookY, dt float64) Pose {
	if dt > 0 && !math.IsInf(dt, 1) {
		r.SetPitch(r.pitch - lookY*r.Sensitivity*dt)
	}
	return r.Pose(target)
}

// Pose computes the camera placement without changing rig state.
func (r *Rig) Pose(target Target) Pose {
	yaw := mgl64.DegToRad(target.Yaw)
	sin, cos := math.Sincos(yaw)
	forward := mgl64.Vec3{sin, 0, cos}
	right := mgl64.Vec3{cos, 0, -sin}
	up := mgl64.Vec3{0, 1, 0}

	eye := target.Position.
		Add(right.Mul(r.Offset.X())).
		Add(up.Mul(r.Offset.Y())).
		Add(forward.Mul(r.Offset.Z()))

	pitch := mgl64.DegToRad(r.pitch)
	look := forward.Mul(math.Cos(pitch)).Sub(up.Mul(math.Sin(pitch)))

	return Pose{
		Eye:    eye,
		Target: eye.Add(look),
		Yaw:    target.Yaw,
		Pitch:  r.pitch,
	}
}

// View returns a right-handed look-at matrix for the pose.
func (p Pose) View() mgl64.Mat4 {
	return mgl64.LookAtV(p.Eye, p.Target, mgl64.Vec3{0, 1, 0})
}
