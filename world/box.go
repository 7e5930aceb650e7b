// Package world holds the static level geometry the controller stands on and
// the registry of level objects read by overlays.
package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Kind classifies a level object.
type Kind uint8

const (
	KindFloor Kind = iota + 1
	KindPlatform
	KindPillar
	KindBody
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindPlatform:
		return "platform"
	case KindPillar:
		return "pillar"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// ParseKind maps a level file name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "floor":
		return KindFloor, true
	case "platform":
		return KindPlatform, true
	case "pillar":
		return KindPillar, true
	case "body":
		return KindBody, true
	}
	return 0, false
}

// Box is an axis-aligned box given by its center and full size.
type Box struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

func (b Box) Min() mgl64.Vec3 {
	return b.Center.Sub(b.Size.Mul(0.5))
}

func (b Box) Max() mgl64.Vec3 {
	return b.Center.Add(b.Size.Mul(0.5))
}

// Top is the height of the box's upper face.
func (b Box) Top() float64 {
	return b.Center.Y() + b.Size.Y()/2
}

// Footprint projects the box onto the XZ plane. cp's Y axis carries world Z.
func (b Box) Footprint() cp.BB {
	lo, hi := b.Min(), b.Max()
	return cp.BB{L: lo.X(), B: lo.Z(), R: hi.X(), T: hi.Z()}
}

// ContainsXZ reports whether (x, z) lies inside the footprint, edges included.
func (b Box) ContainsXZ(x, z float64) bool {
	lo, hi := b.Min(), b.Max()
	return x >= lo.X() && x <= hi.X() && z >= lo.Z() && z <= hi.Z()
}

// Valid reports whether every extent is positive.
func (b Box) Valid() bool {
	return b.Size.X() > 0 && b.Size.Y() > 0 && b.Size.Z() > 0
}
