package engine

import "image/color"

// Handle refers to an asset stored in an [Assets] collection. The zero
// handle refers to nothing.
type Handle[T any] struct {
	id uint32
}

// Assets is a typed asset store. Assets are added once at setup and looked
// up by handle during rendering; nothing is ever evicted.
type Assets[T any] struct {
	next  uint32
	items map[uint32]T
}

func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{items: make(map[uint32]T)}
}

// Add stores v and returns its handle.
func (a *Assets[T]) Add(v T) Handle[T] {
	a.next++
	a.items[a.next] = v
	return Handle[T]{id: a.next}
}

// Get returns the asset behind h.
func (a *Assets[T]) Get(h Handle[T]) (T, bool) {
	v, ok := a.items[h.id]
	return v, ok
}

// Len reports how many assets are stored.
func (a *Assets[T]) Len() int { return len(a.items) }

// ColorMaterial is a flat-color 2D material.
type ColorMaterial struct {
	Color color.Color
}

// AssetPlugin installs the mesh and material stores the 2D pipeline
// draws from.
type AssetPlugin struct{}

func (AssetPlugin) Build(app *App) error {
	SetResource(app.World(), NewAssets[Mesh]())
	SetResource(app.World(), NewAssets[ColorMaterial]())
	return nil
}
