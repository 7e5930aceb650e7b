package component

import "github.com/milk9111/liminal/input"

// Input stores the frame sampled for an entity this tick.
type Input struct {
	Frame input.Frame
}

var InputComponent = NewComponent[Input]()
