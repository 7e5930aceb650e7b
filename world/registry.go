package world

import "github.com/milk9111/liminal/controller"

// Object is one registered level object.
type Object struct {
	ID   controller.EntityID
	Kind Kind
	Box  Box
}

// Registry is the ordered list of level objects. It is owned by whoever builds
// the level and handed by pointer to the components that read it.
type Registry struct {
	objects []Object
	index   map[controller.EntityID]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[controller.EntityID]int)}
}

// Add inserts or replaces the object with the same id.
func (r *Registry) Add(obj Object) {
	if r == nil {
		return
	}
	if i, ok := r.index[obj.ID]; ok {
		r.objects[i] = obj
		return
	}
	r.index[obj.ID] = len(r.objects)
	r.objects = append(r.objects, obj)
}

// Remove drops the object and keeps the remaining order.
func (r *Registry) Remove(id controller.EntityID) bool {
	if r == nil {
		return false
	}
	i, ok := r.index[id]
	if !ok {
		return false
	}
	r.objects = append(r.objects[:i], r.objects[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.objects); j++ {
		r.index[r.objects[j].ID] = j
	}
	return true
}

func (r *Registry) Get(id controller.EntityID) (Object, bool) {
	if r == nil {
		return Object{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return Object{}, false
	}
	return r.objects[i], true
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.objects)
}

// Each visits objects in insertion order. Returning false stops the walk.
func (r *Registry) Each(fn func(Object) bool) {
	if r == nil {
		return
	}
	for _, obj := range r.objects {
		if !fn(obj) {
			return
		}
	}
}

// OfKind returns the objects of the given kinds, or all objects when none are
// given.
func (r *Registry) OfKind(kinds ...Kind) []Object {
	if r == nil {
		return nil
	}
	out := make([]Object, 0, len(r.objects))
	for _, obj := range r.objects {
		if len(kinds) == 0 || hasKind(kinds, obj.Kind) {
			out = append(out, obj)
		}
	}
	return out
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}
