package engine

import (
	"fmt"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
)

// Window describes a render target. In this engine the drawing surface is
// attached directly to the window configuration at construction time; there
// is no windowing system to ask for one later.
type Window struct {
	Title         string
	Width, Height int
	Surface       offscreen.Surface
}

// PrimaryWindow marks the window the renderer draws into.
type PrimaryWindow struct{}

// WindowPlugin spawns the primary window entity, when one is configured.
type WindowPlugin struct {
	PrimaryWindow *Window
}

func (p WindowPlugin) Build(app *App) error {
	if p.PrimaryWindow == nil {
		return nil
	}
	app.World().Spawn(*p.PrimaryWindow, PrimaryWindow{})
	return nil
}

// HandleKind discriminates the platform variants of a [SurfaceHandle].
// Only the detached-surface variant exists in a worker context.
type HandleKind int

const (
	HandleOffscreenSurface HandleKind = iota
)

// SurfaceHandle is the platform handle the render pipeline draws through.
// The renderer reads this component, never [Window].Surface directly.
type SurfaceHandle struct {
	Kind    HandleKind
	Surface offscreen.Surface
}

// RegisterPrimaryWindow attaches a [SurfaceHandle] to the primary window
// entity. A windowing subsystem would normally do this, but none can run in
// a worker context, so the handle is fixed up here once, before any frame.
//
// It does not report the real viewport size back to the engine; both sides
// rely on the shared [offscreen.Viewport] constant.
type RegisterPrimaryWindow struct{}

func (RegisterPrimaryWindow) Build(app *App) error {
	w := app.World()
	e, err := Single[PrimaryWindow](w)
	if err != nil {
		return fmt.Errorf("register primary window: %w", err)
	}
	win, ok := Get[Window](w, e)
	if !ok {
		return fmt.Errorf("register primary window: entity %d has no window configuration", e)
	}
	if win.Surface == nil {
		return fmt.Errorf("register primary window: no drawing surface attached")
	}
	w.Insert(e, SurfaceHandle{Kind: HandleOffscreenSurface, Surface: win.Surface})
	return nil
}
