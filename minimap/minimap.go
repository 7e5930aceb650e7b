// Package minimap projects world XZ positions onto a fixed overlay.
package minimap

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/world"
)

// Projection maps world XZ linearly into overlay units: x grows right, y
// grows up, and (0, 0) in the world lands on Origin.
type Projection struct {
	Origin mgl64.Vec2
	Scale  float64
}

// DefaultProjection places the map in the upper left of a unit-height
// overlay, 0.005 overlay units per world unit.
func DefaultProjection() Projection {
	return Projection{Origin: mgl64.Vec2{-0.65, 0.35}, Scale: 0.005}
}

func (p Projection) Project(x, z float64) mgl64.Vec2 {
	return mgl64.Vec2{p.Origin.X() + x*p.Scale, p.Origin.Y() + z*p.Scale}
}

// Marker is one dot on the map.
type Marker struct {
	ID  uint64
	Pos mgl64.Vec2
}

// Map reads level objects from an explicit registry. Only objects of Kinds
// get markers.
type Map struct {
	Projection Projection
	Kinds      []world.Kind

	registry *world.Registry
	markers  []Marker
}

func New(registry *world.Registry, projection Projection, kinds ...world.Kind) *Map {
	if len(kinds) == 0 {
		kinds = []world.Kind{world.KindPlatform}
	}
	return &Map{Projection: projection, Kinds: kinds, registry: registry}
}

// Player projects the player position.
func (m *Map) Player(position mgl64.Vec3) mgl64.Vec2 {
	return m.Projection.Project(position.X(), position.Z())
}

// Markers rebuilds the marker list from the registry. The returned slice is
// reused by the next call.
func (m *Map) Markers() []Marker {
	m.markers = m.markers[:0]
	for _, obj := range m.registry.OfKind(m.Kinds...) {
		c := obj.Box.Center
		m.markers = append(m.markers, Marker{ID: uint64(obj.ID), Pos: m.Projection.Project(c.X(), c.Z())})
	}
	return m.markers
}

// ToScreen converts overlay units (unit height, centered, y up) to pixels.
func ToScreen(p mgl64.Vec2, width, height int) (float32, float32) {
	w, h := float64(width), float64(height)
	return float32(w/2 + p.X()*h), float32(h/2 - p.Y()*h)
}
