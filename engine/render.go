package engine

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
)

// ClearColor is the frame background. [RenderPlugin] installs a dark-gray
// default; set the resource before running to override it.
type ClearColor struct {
	Color color.Color
}

// DefaultClearColor matches the engine's usual dark backdrop.
var DefaultClearColor = color.RGBA{R: 26, G: 26, B: 26, A: 255}

// RenderPlugin drives the frame: build a drawing context sized to the
// primary window, clear it, run the registered render passes, and present
// the result to the window's surface handle.
type RenderPlugin struct{}

func (RenderPlugin) Build(app *App) error {
	if _, ok := Resource[ClearColor](app.World()); !ok {
		SetResource(app.World(), ClearColor{Color: DefaultClearColor})
	}
	app.AddSystems(Render, renderFrame)
	return nil
}

func renderFrame(app *App) error {
	w := app.World()

	e, err := Single[PrimaryWindow](w)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	handle, ok := Get[SurfaceHandle](w, e)
	if !ok {
		return fmt.Errorf("render: primary window has no surface handle")
	}

	width, height := frameSize(w, e, handle)
	dc := gg.NewContext(width, height)
	defer dc.Close()

	cc := MustResource[ClearColor](w)
	dc.SetColor(cc.Color)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}

	if len(Query[Camera2D](w)) == 0 {
		app.Logger().Debug("no camera, presenting cleared frame")
	} else {
		for _, pass := range app.passes {
			if err := pass(app, dc); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
	}

	return present(dc.Image(), handle.Surface)
}

// frameSize prefers the window configuration and falls back to the surface.
func frameSize(w *World, e Entity, handle SurfaceHandle) (int, int) {
	if win, ok := Get[Window](w, e); ok && win.Width > 0 && win.Height > 0 {
		return win.Width, win.Height
	}
	size := handle.Surface.Size()
	return size.Width, size.Height
}

// present pushes the frame to the surface, scaling when the context and
// surface sizes disagree.
func present(img image.Image, surface offscreen.Surface) error {
	size := surface.Size()
	b := img.Bounds()
	if b.Dx() != size.Width || b.Dy() != size.Height {
		dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
	if err := surface.Present(img); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
