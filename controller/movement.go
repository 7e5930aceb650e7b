package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// validDelta reports whether dt can drive rate-dependent updates.
func validDelta(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 1)
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Basis returns the horizontal forward and right unit vectors for a yaw in
// degrees. Yaw 0 faces +Z with +X to the right; positive yaw turns right.
func Basis(yaw float64) (forward, right mgl64.Vec3) {
	sin, cos := math.Sincos(mgl64.DegToRad(yaw))
	forward = mgl64.Vec3{sin, 0, cos}
	right = mgl64.Vec3{cos, 0, -sin}
	return forward, right
}

// horizontalVelocity returns the new XZ velocity. With movement input the
// controller moves at full speed along the camera-relative direction; without
// it the previous velocity decays toward zero and never crosses it.
func horizontalVelocity(cfg Config, current mgl64.Vec2, yaw, forwardAxis, strafeAxis, dt float64) mgl64.Vec2 {
	forward, right := Basis(yaw)
	dir := forward.Mul(forwardAxis).Add(right.Mul(strafeAxis))
	flat := mgl64.Vec2{dir.X(), dir.Z()}
	if flat.Len() > 0 {
		return flat.Normalize().Mul(cfg.Speed)
	}
	return damp(current, dt*cfg.DampingRate, cfg.StopEpsilon)
}

// damp lerps v toward zero by t, clamped to [0, 1].
func damp(v mgl64.Vec2, t, epsilon float64) mgl64.Vec2 {
	t = mgl64.Clamp(t, 0, 1)
	v = v.Mul(1 - t)
	if v.Len() < epsilon {
		return mgl64.Vec2{}
	}
	return v
}

// applyGravity integrates gravity into a vertical velocity, honoring the
// optional fall speed cap.
func applyGravity(cfg Config, vy, dt float64) float64 {
	vy -= cfg.Gravity * dt
	if cfg.MaxFallSpeed > 0 && vy < -cfg.MaxFallSpeed {
		vy = -cfg.MaxFallSpeed
	}
	return vy
}
