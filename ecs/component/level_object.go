package component

import (
	"image/color"

	"github.com/milk9111/liminal/world"
)

// LevelObject marks static level geometry registered with the world space.
type LevelObject struct {
	Object world.Object
	Color  color.RGBA
}

var LevelObjectComponent = NewComponent[LevelObject]()
