package entity

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/camera"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/prefabs"
)

type buildContext struct {
	PrefabPath string
	Name       string
	// Tuning, when set, replaces the controller block of a player prefab.
	Tuning *controller.Config
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag": addPlayerTag,
	"camera_tag": addCameraTag,
	"transform":  addTransform,
	"input":      addInput,
	"player":     addPlayer,
	"camera":     addCamera,
}

// player reads the spawn pose from transform, so transform comes first.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"transform",
	"input",
	"player",
	"camera",
}

// BuildOption adjusts a build before components are added.
type BuildOption func(*buildContext)

// WithTuning overrides the controller tuning from the prefab.
func WithTuning(cfg controller.Config) BuildOption {
	return func(ctx *buildContext) {
		ctx.Tuning = &cfg
	}
}

func BuildEntity(w *ecs.World, prefabPath string, opts ...BuildOption) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Name: spec.Name}
	for _, opt := range opts {
		opt(ctx)
	}

	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: add name: %w", prefabPath, err)
	}

	names := make([]string, 0, len(spec.Components))
	seen := make(map[string]bool, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range spec.Components {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, position mgl64.Vec3, yaw float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.Position = position
	t.Yaw = yaw
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec(raw, prefabs.TransformComponentSpec{})
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: spec.Position.Vec(),
		Yaw:      spec.Yaw,
	})
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec(raw, prefabs.PlayerComponentSpec{
		Size:       prefabs.Vec3Spec{X: 1, Y: 2, Z: 1},
		Controller: prefabs.ControllerSpecFrom(controller.DefaultConfig()),
	})
	if err != nil {
		return err
	}
	cfg := spec.Controller.Config()
	if ctx.Tuning != nil {
		cfg = *ctx.Tuning
	}

	var spawn mgl64.Vec3
	var yaw float64
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		spawn, yaw = t.Position, t.Yaw
	}

	ctrl, err := controller.New(cfg, spawn, yaw, controller.EntityID(e))
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Controller: ctrl,
		Size:       spec.Size.Vec(),
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	def := camera.DefaultRig()
	spec, err := prefabs.DecodeComponentSpec(raw, prefabs.CameraComponentSpec{
		Target:      "player",
		Offset:      prefabs.Vec3Spec{X: def.Offset.X(), Y: def.Offset.Y(), Z: def.Offset.Z()},
		Pitch:       def.Pitch(),
		Sensitivity: def.Sensitivity,
	})
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.Target,
		Rig:        camera.NewRig(spec.Offset.Vec(), spec.Pitch, spec.Sensitivity),
	})
}
