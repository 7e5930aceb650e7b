package system

import (
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/input"
)

// InputSystem samples the device once per frame and hands the frame to every
// player.
type InputSystem struct {
	sampler input.Sampler
}

func NewInputSystem(sampler input.Sampler) *InputSystem {
	return &InputSystem{sampler: sampler}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil || i.sampler == nil {
		return
	}

	frame := i.sampler.Sample()
	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerTagComponent.Kind(), func(_ ecs.Entity, in *component.Input, _ *component.PlayerTag) {
		in.Frame = frame
	})
}
