package system

import (
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/world"
)

// PlayerControllerSystem steps every tagged player's controller against the world
// space, then mirrors the result into its transform and body box.
type PlayerControllerSystem struct {
	space *world.Space
}

func NewPlayerControllerSystem(space *world.Space) *PlayerControllerSystem {
	return &PlayerControllerSystem{space: space}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var probe controller.GroundProbe = controller.NoGround
	if s.space != nil {
		probe = s.space
	}

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), component.PlayerTagComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, t *component.Transform, _ *component.PlayerTag) {
			if p.Controller == nil {
				return
			}

			p.Events = p.Controller.Update(in.Frame, dt, probe)
			st := p.Controller.State()
			t.Position = st.Position
			t.Yaw = st.Yaw

			if s.space != nil {
				body := world.Box{Center: st.Position, Size: p.Size}
				if body.Valid() {
					s.space.Set(p.Controller.Self(), body)
				}
			}

			if p.Events != 0 {
				pushControllerEvents(w, e, p.Events, st)
			}
		})
}
