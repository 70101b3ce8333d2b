// Package offscreen moves a transferable drawing surface from the browser
// context that created it into the worker context that renders into it.
//
// The package is split along the two halves of that handoff. [Launch] runs on
// the main thread: it creates a canvas, detaches its drawing surface and hands
// the surface to a freshly spawned worker. [Serve] runs inside the worker: it
// announces readiness, waits for the surface and passes it to the render
// entry point exactly once.
//
// All host access goes through the [Env], [Scope] and [Port] capabilities, so
// the protocol itself is plain Go. [BrowserEnv] and [WorkerScope] bind the
// capabilities to a real browser; [NewMemoryEnv] provides an in-process
// stand-in for tests and harnesses.
package offscreen

// Size is a surface extent in device pixels.
type Size struct {
	Width, Height int
}

// Viewport is the surface size both contexts assume.
//
// The worker never learns the real canvas size (the window substitute does
// not report it back), so launcher and renderer must agree here rather than
// each hardcoding their own copy.
var Viewport = Size{Width: 1280, Height: 720}

// DefaultWorkerName is the logical name of the worker build artifact.
// The worker bootstrap loads <name>.js and <name>_bg.wasm from the page
// origin under this name.
const DefaultWorkerName = "render_worker"
