// Package scene declares the fixed demo scene: a 2D camera and four flat
// shapes in a row across the middle of the viewport.
package scene

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/haibane-tenshi/gg-webworker-example/engine"
)

// Palette used by the scene. The rectangle keeps its engine-float origin
// (0.25, 0.25, 0.75) instead of a named color.
var (
	Circle    = colornames.Purple
	Rectangle = color.RGBA{R: 64, G: 64, B: 191, A: 255}
	Quad      = colornames.Limegreen
	Hexagon   = colornames.Turquoise
)

// Spawn is a startup system creating the camera and the four shapes.
// Everything spawned here is immutable for the rest of the run.
func Spawn(app *engine.App) error {
	w := app.World()

	meshes := engine.MustResource[*engine.Assets[engine.Mesh]](w)
	materials := engine.MustResource[*engine.Assets[engine.ColorMaterial]](w)

	w.Spawn(engine.Camera2D{})

	// Circle
	w.Spawn(engine.Mesh2D{
		Mesh:     meshes.Add(engine.CircleMesh(50)),
		Material: materials.Add(engine.ColorMaterial{Color: Circle}),
	}, engine.Transform{X: -150})

	// Rectangle
	w.Spawn(engine.Sprite{
		Color: Rectangle,
		Width: 50, Height: 100,
	}, engine.Transform{X: -50})

	// Quad
	w.Spawn(engine.Mesh2D{
		Mesh:     meshes.Add(engine.QuadMesh(50, 100)),
		Material: materials.Add(engine.ColorMaterial{Color: Quad}),
	}, engine.Transform{X: 50})

	// Hexagon
	w.Spawn(engine.Mesh2D{
		Mesh:     meshes.Add(engine.RegularPolygonMesh(50, 6)),
		Material: materials.Add(engine.ColorMaterial{Color: Hexagon}),
	}, engine.Transform{X: 150})

	return nil
}
