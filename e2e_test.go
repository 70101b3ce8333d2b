package offscreen_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
	"github.com/haibane-tenshi/gg-webworker-example/engine"
	"github.com/haibane-tenshi/gg-webworker-example/scene"
)

// TestRenderRoundTrip drives the whole demo through the in-memory host:
// launch on one side, a real engine single pass on the other, and the four
// shapes landing on the canvas that stayed behind.
func TestRenderRoundTrip(t *testing.T) {
	done := make(chan error, 1)
	env := offscreen.NewMemoryEnv(func(scope offscreen.Scope) {
		done <- offscreen.Serve(scope, func(surface offscreen.Surface) error {
			app := engine.New()
			err := app.AddPlugins(engine.DefaultPlugins{
				PrimaryWindow: &engine.Window{
					Width:   offscreen.Viewport.Width,
					Height:  offscreen.Viewport.Height,
					Surface: surface,
				},
			}.Plugins()...)
			if err != nil {
				return err
			}
			app.AddSystems(engine.Startup, scene.Spawn)
			return app.Run()
		})
	})

	if err := offscreen.Launch(env, offscreen.LaunchOptions{}); err != nil {
		t.Fatalf("launch: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("worker: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("handoff never completed")
	}

	cs := env.Canvases()
	if len(cs) != 1 {
		t.Fatalf("attached %d canvases, want 1", len(cs))
	}
	img := cs[0].Displayed()
	if img == nil {
		t.Fatal("nothing was presented to the canvas")
	}

	// Sample the center of each shape, plus a background point.
	cx, cy := offscreen.Viewport.Width/2, offscreen.Viewport.Height/2
	samples := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"circle", cx - 150, cy, scene.Circle},
		{"rectangle", cx - 50, cy, scene.Rectangle},
		{"quad", cx + 50, cy, scene.Quad},
		{"hexagon", cx + 150, cy, scene.Hexagon},
		{"background", 10, 10, engine.DefaultClearColor},
	}
	for _, s := range samples {
		if got := img.RGBAAt(s.x, s.y); got != s.want {
			t.Errorf("%s at (%d,%d): got %v, want %v", s.name, s.x, s.y, got, s.want)
		}
	}

	// The protocol is two messages and then silence.
	want := []string{
		"append canvas 1280x720",
		"spawn render_worker",
		"worker->main ready",
		"main->worker surface",
	}
	if diff := cmp.Diff(want, env.Trace()); diff != "" {
		t.Errorf("host trace (-want +got):\n%s", diff)
	}
}
