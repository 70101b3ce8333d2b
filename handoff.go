package offscreen

import (
	"fmt"
	"sync"
)

// LaunchOptions configures the main-context half of the handoff.
// The zero value launches [DefaultWorkerName] at the [Viewport] size.
type LaunchOptions struct {
	// WorkerName is the logical name of the worker build artifact.
	WorkerName string

	// Viewport overrides the canvas size. The worker side does not learn
	// about the override; keep both sides on [Viewport] unless the worker
	// binary is built to match.
	Viewport Size
}

// Launch creates the render canvas, detaches its surface and spawns the
// worker that will own it. The surface is posted only after the worker
// signals readiness: posting earlier could race the worker installing its
// message handler, and the message would be lost with no retry path.
//
// Launch returns once the worker is spawned; the handoff itself completes on
// the host event loop. Every failure before that point is a startup fault
// the caller should treat as fatal.
func Launch(env Env, opts LaunchOptions) error {
	name := opts.WorkerName
	if name == "" {
		name = DefaultWorkerName
	}
	size := opts.Viewport
	if size == (Size{}) {
		size = Viewport
	}

	canvas, err := env.AppendCanvas(size)
	if err != nil {
		return fmt.Errorf("attach canvas: %w", err)
	}

	// The canvas element cannot cross the context boundary; only its
	// detached surface can.
	surface, err := canvas.TransferControl()
	if err != nil {
		return fmt.Errorf("detach surface: %w", err)
	}

	worker, err := env.SpawnWorker(name)
	if err != nil {
		return fmt.Errorf("spawn %s: %w", name, err)
	}

	var once sync.Once
	worker.OnMessage(func(m Message) {
		// The first message is the readiness signal; its content is not
		// inspected. Anything after it is outside the protocol and ignored.
		once.Do(func() {
			err := worker.Post(WithSurface(surface))
			assert(err == nil, "posting surface to worker: %v", err)
		})
	})
	return nil
}

// Serve runs the worker-context half of the handoff: install the message
// handler, announce readiness, wait for the surface and hand it to run.
// It returns run's result, or an error if the payload was not a surface.
//
// Serve blocks until the surface arrives. There is no timeout: if the
// launcher never posts, the worker stays idle forever.
func Serve(scope Scope, run func(Surface) error) error {
	msgs := make(chan Message, 1)
	var once sync.Once
	scope.OnMessage(func(m Message) {
		once.Do(func() { msgs <- m })
	})

	// Only now is it safe to tell the launcher we exist.
	if err := scope.Post(Ready()); err != nil {
		return fmt.Errorf("announce readiness: %w", err)
	}

	surface, err := DecodeSurface(<-msgs)
	if err != nil {
		return fmt.Errorf("surface handoff: %w", err)
	}
	return run(surface)
}
