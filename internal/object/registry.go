package object

import (
	"slices"

	"github.com/tomz197/spaceshield/internal/render"
)

// Registry is an ordered collection of live entities of one kind.
// Every mutation adds or removes the entity's visual in the same call,
// so the scene and the registry never disagree.
type Registry[T Body] struct {
	scene render.Scene
	items []T
}

// NewRegistry creates an empty registry publishing visuals to scene.
func NewRegistry[T Body](scene render.Scene) *Registry[T] {
	if scene == nil {
		scene = render.Nop{}
	}
	return &Registry[T]{scene: scene}
}

// Add appends item and publishes its visual.
func (r *Registry[T]) Add(item T) {
	e := item.Base()
	e.Sync()
	r.items = append(r.items, item)
	if e.Visual != nil {
		r.scene.Add(e.Visual)
	}
}

// RemoveAt removes the item at index i together with its visual.
func (r *Registry[T]) RemoveAt(i int) T {
	item := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	if v := item.Base().Visual; v != nil {
		r.scene.Remove(v)
	}
	return item
}

// RemoveFunc removes every item for which drop returns true.
// Items are visited from last to first. It returns the number removed.
func (r *Registry[T]) RemoveFunc(drop func(T) bool) int {
	n := 0
	for i := len(r.items) - 1; i >= 0; i-- {
		if drop(r.items[i]) {
			r.RemoveAt(i)
			n++
		}
	}
	return n
}

// Clear removes every item and releases its visual.
func (r *Registry[T]) Clear() {
	for _, item := range r.items {
		if v := item.Base().Visual; v != nil {
			r.scene.Remove(v)
		}
	}
	clear(r.items)
	r.items = r.items[:0]
}

// Len returns the number of live items.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// At returns the item at index i.
func (r *Registry[T]) At(i int) T {
	return r.items[i]
}

// Items returns the live items. The slice must not be modified.
func (r *Registry[T]) Items() []T {
	return r.items
}
