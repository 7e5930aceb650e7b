package system

import (
	"github.com/milk9111/liminal/camera"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update trails the camera rig behind its target and feeds it the target's
// vertical look input.
func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	if !w.IsAlive(cs.camEntity) {
		e, _, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
		cs.targetEntity = 0
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok || cam.Rig == nil {
		return
	}

	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	lookY := 0.0
	if in, ok := ecs.Get(w, cs.targetEntity, component.InputComponent.Kind()); ok {
		lookY = in.Frame.Look.Y()
	}

	cam.Pose = cam.Rig.Update(camera.Target{Position: targetTransform.Position, Yaw: targetTransform.Yaw}, lookY, dt)

	if t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		t.Position = cam.Pose.Eye
		t.Yaw = cam.Pose.Yaw
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	if name != "" {
		ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
			if !found.Valid() && n.Value == name {
				found = e
			}
		})
		if found.Valid() {
			return found
		}
	}
	if e, _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		return e
	}
	return 0
}
