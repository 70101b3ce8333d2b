package engine

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Transform positions an entity in world coordinates: origin at the center
// of the viewport, X right, Y up.
type Transform struct {
	X, Y float64
}

// Camera2D marks the viewpoint entity. Without one, nothing is drawn.
type Camera2D struct{}

type meshKind int

const (
	meshCircle meshKind = iota
	meshQuad
	meshRegularPolygon
)

// Mesh is 2D shape geometry, stored as an asset and referenced from
// [Mesh2D] components.
type Mesh struct {
	kind          meshKind
	radius        float64
	width, height float64
	sides         int
}

// CircleMesh is a circle of the given radius.
func CircleMesh(radius float64) Mesh {
	return Mesh{kind: meshCircle, radius: radius}
}

// QuadMesh is an axis-aligned rectangle centered on the entity's transform.
func QuadMesh(width, height float64) Mesh {
	return Mesh{kind: meshQuad, width: width, height: height}
}

// RegularPolygonMesh is a regular polygon with a vertex pointing up.
func RegularPolygonMesh(radius float64, sides int) Mesh {
	assert(sides >= 3, "polygon needs at least 3 sides, got %d", sides)
	return Mesh{kind: meshRegularPolygon, radius: radius, sides: sides}
}

// Mesh2D renders a mesh asset with a material asset at the entity's
// transform.
type Mesh2D struct {
	Mesh     Handle[Mesh]
	Material Handle[ColorMaterial]
}

// Sprite renders a flat-colored rectangle of its own size at the entity's
// transform, no assets involved.
type Sprite struct {
	Color         color.Color
	Width, Height float64
}

// SpritePlugin registers the 2D draw pass: all [Mesh2D] entities in spawn
// order, then all [Sprite] entities.
type SpritePlugin struct{}

func (SpritePlugin) Build(app *App) error {
	app.AddRenderPass(drawShapes)
	return nil
}

func drawShapes(app *App, dc *gg.Context) error {
	w := app.World()
	cx := float64(dc.Width()) / 2
	cy := float64(dc.Height()) / 2

	meshes := MustResource[*Assets[Mesh]](w)
	materials := MustResource[*Assets[ColorMaterial]](w)

	for _, e := range Query[Mesh2D](w) {
		m2d, _ := Get[Mesh2D](w, e)
		mesh, ok := meshes.Get(m2d.Mesh)
		if !ok {
			return fmt.Errorf("entity %d references an unloaded mesh", e)
		}
		mat, ok := materials.Get(m2d.Material)
		if !ok {
			return fmt.Errorf("entity %d references an unloaded material", e)
		}

		t, _ := Get[Transform](w, e)
		px := cx + t.X
		py := cy - t.Y

		dc.SetColor(mat.Color)
		switch mesh.kind {
		case meshCircle:
			dc.DrawCircle(px, py, mesh.radius)
		case meshQuad:
			dc.DrawRectangle(px-mesh.width/2, py-mesh.height/2, mesh.width, mesh.height)
		case meshRegularPolygon:
			// -π/2 puts the first vertex at the top of the shape.
			dc.DrawRegularPolygon(mesh.sides, px, py, mesh.radius, -math.Pi/2)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill mesh for entity %d: %w", e, err)
		}
	}

	for _, e := range Query[Sprite](w) {
		s, _ := Get[Sprite](w, e)
		t, _ := Get[Transform](w, e)
		px := cx + t.X
		py := cy - t.Y

		dc.SetColor(s.Color)
		dc.DrawRectangle(px-s.Width/2, py-s.Height/2, s.Width, s.Height)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill sprite for entity %d: %w", e, err)
		}
	}
	return nil
}
