package controller

import "github.com/go-gl/mathgl/mgl64"

// EntityID identifies the owner of a collision volume so a probe can skip the
// controller's own body.
type EntityID uint64

// ProbeResult is the outcome of one ground probe. ContactHeight is only
// meaningful when Hit is true.
type ProbeResult struct {
	Hit           bool
	ContactHeight float64
}

// GroundProbe casts straight down from origin for at most maxDistance and
// reports the first standing surface, ignoring volumes owned by exclude.
// Implementations must be synchronous.
type GroundProbe interface {
	ProbeGround(origin mgl64.Vec3, maxDistance float64, exclude EntityID) ProbeResult
}

// ProbeFunc adapts a function to GroundProbe.
type ProbeFunc func(origin mgl64.Vec3, maxDistance float64, exclude EntityID) ProbeResult

func (f ProbeFunc) ProbeGround(origin mgl64.Vec3, maxDistance float64, exclude EntityID) ProbeResult {
	return f(origin, maxDistance, exclude)
}

// NoGround never reports a hit.
var NoGround GroundProbe = ProbeFunc(func(mgl64.Vec3, float64, EntityID) ProbeResult {
	return ProbeResult{}
})
