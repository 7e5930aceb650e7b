package component

import "github.com/go-gl/mathgl/mgl64"

// Transform mirrors the pose an entity is drawn at.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
