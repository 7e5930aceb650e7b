package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/ecs"
	"github.com/milk9111/liminal/ecs/component"
	"github.com/milk9111/liminal/prefabs"
	"github.com/milk9111/liminal/world"
	"golang.org/x/image/colornames"
)

var defaultColors = map[world.Kind]color.RGBA{
	world.KindFloor:    colornames.Dimgray,
	world.KindPlatform: colornames.Goldenrod,
	world.KindPillar:   colornames.Slategray,
}

// BuildLevel creates one entity per level object and registers its box with
// the registry and the collision space.
func BuildLevel(w *ecs.World, spec prefabs.LevelSpec, registry *world.Registry, space *world.Space) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("level: world is nil")
	}
	out := make([]ecs.Entity, 0, len(spec.Objects))
	for i, objSpec := range spec.Objects {
		kind, ok := world.ParseKind(objSpec.Kind)
		if !ok || kind == world.KindBody {
			return out, fmt.Errorf("level: %s: object %d: unknown kind %q", spec.Name, i, objSpec.Kind)
		}
		box := world.Box{Center: objSpec.Center.Vec(), Size: objSpec.Size.Vec()}
		if !box.Valid() {
			return out, fmt.Errorf("level: %s: object %d: invalid box %+v", spec.Name, i, box)
		}
		c, ok := colornames.Map[objSpec.Color]
		if !ok {
			c = defaultColors[kind]
		}

		e := ecs.CreateEntity(w)
		obj := world.Object{ID: controller.EntityID(e), Kind: kind, Box: box}
		if err := ecs.Add(w, e, component.LevelObjectComponent.Kind(), &component.LevelObject{Object: obj, Color: c}); err != nil {
			return out, fmt.Errorf("level: add object: %w", err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: box.Center}); err != nil {
			return out, fmt.Errorf("level: add transform: %w", err)
		}
		registry.Add(obj)
		space.Add(obj.ID, box)
		out = append(out, e)
	}
	return out, nil
}
