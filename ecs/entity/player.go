package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
)

func NewPlayer(w *ecs.World, opts ...BuildOption) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", opts...)
}

// NewPlayerAt builds the player prefab and moves it to spawn. The controller
// is rebuilt there so its state starts at the new pose.
func NewPlayerAt(w *ecs.World, spawn mgl64.Vec3, yaw float64, opts ...BuildOption) (ecs.Entity, error) {
	e, err := NewPlayer(w, opts...)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, spawn, yaw); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("player: prefab has no player component")
	}
	ctrl, err := controller.New(p.Controller.Config(), spawn, yaw, controller.EntityID(e))
	if err != nil {
		return 0, fmt.Errorf("player: respawn controller: %w", err)
	}
	p.Controller = ctrl
	return e, nil
}
