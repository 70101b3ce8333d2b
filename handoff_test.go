package offscreen

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestLaunchAppendsOneCanvas(t *testing.T) {
	env := NewMemoryEnv(func(Scope) {})

	if err := Launch(env, LaunchOptions{}); err != nil {
		t.Fatalf("launch: %v", err)
	}

	cs := env.Canvases()
	if len(cs) != 1 {
		t.Fatalf("attached %d canvases, want 1", len(cs))
	}
	if got := cs[0].Size(); got != Viewport {
		t.Errorf("canvas size %+v, want %+v", got, Viewport)
	}
}

func TestLaunchViewportOverride(t *testing.T) {
	env := NewMemoryEnv(func(Scope) {})

	want := Size{Width: 640, Height: 480}
	if err := Launch(env, LaunchOptions{Viewport: want}); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if got := env.Canvases()[0].Size(); got != want {
		t.Errorf("canvas size %+v, want %+v", got, want)
	}
}

func TestLaunchWithoutDocument(t *testing.T) {
	env := NewMemoryEnv(func(Scope) {})
	env.DropDocument()

	if err := Launch(env, LaunchOptions{}); err == nil {
		t.Fatal("launch succeeded without a document")
	}
}

func TestReadySignalPrecedesSurface(t *testing.T) {
	got := make(chan struct{})
	env := NewMemoryEnv(func(scope Scope) {
		scope.OnMessage(func(m Message) {
			if m.Kind == MsgSurface {
				close(got)
			}
		})
		if err := scope.Post(Ready()); err != nil {
			t.Errorf("post ready: %v", err)
		}
	})

	if err := Launch(env, LaunchOptions{}); err != nil {
		t.Fatalf("launch: %v", err)
	}
	waitFor(t, got, "surface delivery")

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

func TestLaunchPostsSurfaceOnce(t *testing.T) {
	first := make(chan struct{})
	env := NewMemoryEnv(func(scope Scope) {
		surfaces := 0
		scope.OnMessage(func(m Message) {
			if m.Kind != MsgSurface {
				return
			}
			surfaces++
			switch surfaces {
			case 1:
				close(first)
			default:
				t.Error("surface posted more than once")
			}
		})
		// A second readiness signal is outside the protocol; the launcher
		// must not react to it.
		scope.Post(Ready())
		scope.Post(Ready())
	})

	if err := Launch(env, LaunchOptions{}); err != nil {
		t.Fatalf("launch: %v", err)
	}
	waitFor(t, first, "surface delivery")
	time.Sleep(50 * time.Millisecond)

	count := 0
	for _, ev := range env.Trace() {
		if ev == "main->worker surface" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("surface posted %d times, want 1", count)
	}
}

func TestTransferRevokesSenderAccess(t *testing.T) {
	canvas := &MemoryCanvas{size: Viewport}
	surface, err := canvas.TransferControl()
	if err != nil {
		t.Fatalf("transfer control: %v", err)
	}
	if _, err := canvas.TransferControl(); err == nil {
		t.Error("second TransferControl succeeded, want error")
	}

	main, remote := newPortPair(nil)
	received := make(chan Message, 1)
	remote.OnMessage(func(m Message) { received <- m })

	if err := main.Post(WithSurface(surface)); err != nil {
		t.Fatalf("post surface: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, Viewport.Width, Viewport.Height))
	if err := surface.Present(img); err == nil {
		t.Error("sender still able to present after transfer")
	}

	m := <-received
	moved, err := DecodeSurface(m)
	if err != nil {
		t.Fatalf("decode on receiving side: %v", err)
	}
	if err := moved.Present(img); err != nil {
		t.Errorf("receiver cannot present: %v", err)
	}
}

func TestServeRejectsUnexpectedPayload(t *testing.T) {
	main, remote := newPortPair(nil)
	main.OnMessage(func(m Message) {
		// Answer readiness with a payload that is not a surface.
		if err := main.Post(Ready()); err != nil {
			t.Errorf("post: %v", err)
		}
	})

	ran := false
	err := Serve(remote, func(Surface) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatal("serve accepted a non-surface payload")
	}
	if !strings.Contains(err.Error(), "expected a surface payload") {
		t.Errorf("error %q does not describe the decode fault", err)
	}
	if ran {
		t.Error("render entry point ran despite malformed handoff")
	}
}

func TestServeRunsExactlyOnce(t *testing.T) {
	main, remote := newPortPair(nil)
	surface := NewMemorySurface(Viewport)
	main.OnMessage(func(m Message) {
		main.Post(WithSurface(surface))
	})

	runs := 0
	err := Serve(remote, func(s Surface) error {
		runs++
		if s == nil {
			t.Error("nil surface delivered")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if runs != 1 {
		t.Errorf("render entry point ran %d times, want 1", runs)
	}
}
