package engine

import (
	"strings"
	"testing"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
)

func TestRegisterPrimaryWindow(t *testing.T) {
	surface := offscreen.NewMemorySurface(offscreen.Viewport)

	t.Run("ok", func(t *testing.T) {
		app := New()
		win := &Window{Width: 1280, Height: 720, Surface: surface}
		if err := app.AddPlugins(WindowPlugin{PrimaryWindow: win}, RegisterPrimaryWindow{}); err != nil {
			t.Fatalf("add plugins: %v", err)
		}

		e, err := Single[PrimaryWindow](app.World())
		if err != nil {
			t.Fatalf("single: %v", err)
		}
		h, ok := Get[SurfaceHandle](app.World(), e)
		if !ok {
			t.Fatal("no surface handle attached")
		}
		if h.Kind != HandleOffscreenSurface || h.Surface != offscreen.Surface(surface) {
			t.Errorf("handle = %+v", h)
		}
	})

	t.Run("no window", func(t *testing.T) {
		app := New()
		err := app.AddPlugins(WindowPlugin{}, RegisterPrimaryWindow{})
		if err == nil {
			t.Fatal("build succeeded without a primary window")
		}
		if !strings.Contains(err.Error(), "have 0") {
			t.Errorf("error %q does not report the count", err)
		}
	})

	t.Run("two windows", func(t *testing.T) {
		app := New()
		win := Window{Surface: surface}
		app.World().Spawn(win, PrimaryWindow{})
		app.World().Spawn(win, PrimaryWindow{})

		err := app.AddPlugins(RegisterPrimaryWindow{})
		if err == nil {
			t.Fatal("build succeeded with two primary windows")
		}
		if !strings.Contains(err.Error(), "have 2") {
			t.Errorf("error %q does not report the count", err)
		}
	})

	t.Run("no surface", func(t *testing.T) {
		app := New()
		err := app.AddPlugins(
			WindowPlugin{PrimaryWindow: &Window{Width: 1280, Height: 720}},
			RegisterPrimaryWindow{},
		)
		if err == nil {
			t.Fatal("build succeeded without a drawing surface")
		}
	})
}
