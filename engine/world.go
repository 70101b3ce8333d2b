package engine

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Entity identifies a spawned object in a [World]. The zero value is never a
// live entity.
type Entity = uint32

// World stores entities, their components and global resources. Components
// and resources are keyed by their Go type, one value per type per entity.
//
// A World is confined to the engine's single thread; it is not safe for
// concurrent use.
type World struct {
	next       Entity
	components map[reflect.Type]map[Entity]any
	resources  map[reflect.Type]any
}

func NewWorld() *World {
	return &World{
		components: make(map[reflect.Type]map[Entity]any),
		resources:  make(map[reflect.Type]any),
	}
}

// Spawn creates a new entity carrying the given components.
func (w *World) Spawn(components ...any) Entity {
	w.next++
	e := w.next
	w.Insert(e, components...)
	return e
}

// Insert attaches components to an existing entity, replacing any component
// of the same type.
func (w *World) Insert(e Entity, components ...any) {
	for _, c := range components {
		tt := reflect.TypeOf(c)
		store := w.components[tt]
		if store == nil {
			store = make(map[Entity]any)
			w.components[tt] = store
		}
		store[e] = c
	}
}

// Get returns e's component of type T.
func Get[T any](w *World, e Entity) (T, bool) {
	var z T
	store := w.components[reflect.TypeFor[T]()]
	if store == nil {
		return z, false
	}
	v, ok := store[e]
	if !ok {
		return z, false
	}
	return v.(T), true
}

// Query returns every entity carrying a component of type T, in spawn order.
func Query[T any](w *World) []Entity {
	store := w.components[reflect.TypeFor[T]()]
	if len(store) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(store))
}

// Single returns the one entity carrying a component of type T, or an error
// naming how many were found.
func Single[T any](w *World) (Entity, error) {
	es := Query[T](w)
	if len(es) != 1 {
		return 0, fmt.Errorf("want exactly one %v entity, have %d", reflect.TypeFor[T](), len(es))
	}
	return es[0], nil
}

// Resource returns the world's resource of type T.
func Resource[T any](w *World) (T, bool) {
	var z T
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return z, false
	}
	return v.(T), true
}

// SetResource stores v as the world's single resource of its type.
func SetResource[T any](w *World, v T) {
	w.resources[reflect.TypeFor[T]()] = v
}

// MustResource is Resource for resources a plugin is known to have
// installed. It panics when the resource is missing.
func MustResource[T any](w *World) T {
	v, ok := Resource[T](w)
	assert(ok, "missing resource %v", reflect.TypeFor[T]())
	return v
}
