package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/controller"
)

// Player binds an entity to its character controller.
type Player struct {
	Controller *controller.Controller
	// Size is the full extent of the body box registered with the world space.
	Size mgl64.Vec3
	// Events holds the transitions reported by the most recent update.
	Events controller.Events
}

var PlayerComponent = NewComponent[Player]()
