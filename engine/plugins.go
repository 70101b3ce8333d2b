package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
)

// discardHandler drops all records. Enabled returns false so disabled
// logging costs nothing.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

// LogPlugin installs the app logger and forwards it to the gg backend so
// renderer diagnostics land in the same place.
type LogPlugin struct {
	// Logger to install; slog.Default() when nil.
	Logger *slog.Logger
}

func (p LogPlugin) Build(app *App) error {
	l := p.Logger
	if l == nil {
		l = slog.Default()
	}
	app.SetLogger(l)
	gg.SetLogger(l)
	return nil
}

// Time tracks wall-clock progress across ticks.
type Time struct {
	Startup time.Time
	Now     time.Time
	Delta   time.Duration
}

// TimePlugin installs the *[Time] resource and advances it every tick.
type TimePlugin struct{}

func (TimePlugin) Build(app *App) error {
	now := time.Now()
	SetResource(app.World(), &Time{Startup: now, Now: now})
	app.AddSystems(Update, func(app *App) error {
		t := MustResource[*Time](app.World())
		now := time.Now()
		t.Delta = now.Sub(t.Now)
		t.Now = now
		return nil
	})
	return nil
}

// FrameCount counts completed ticks, starting at zero on the first.
type FrameCount struct {
	Value uint64
}

// FrameCountPlugin installs the *[FrameCount] resource.
type FrameCountPlugin struct{}

func (FrameCountPlugin) Build(app *App) error {
	SetResource(app.World(), &FrameCount{})
	app.AddSystems(Update, func(app *App) error {
		MustResource[*FrameCount](app.World()).Value++
		return nil
	})
	return nil
}

// DiagnosticsPlugin logs per-tick timing at debug level.
// Install after [TimePlugin] and [FrameCountPlugin]; it reads both.
type DiagnosticsPlugin struct{}

func (DiagnosticsPlugin) Build(app *App) error {
	app.AddSystems(Update, func(app *App) error {
		t := MustResource[*Time](app.World())
		fc := MustResource[*FrameCount](app.World())
		app.Logger().Debug("tick", "frame", fc.Value, "delta", t.Delta)
		return nil
	})
	return nil
}

// Input is the keyboard/pointer state resource. Inside a worker no event
// source reaches the engine, so the state never changes; the resource exists
// because rendering systems expect to find it.
type Input struct {
	pressed map[string]bool
}

// Pressed reports whether the named key code is held down.
func (in *Input) Pressed(code string) bool { return in.pressed[code] }

// InputPlugin installs the (inert) *[Input] resource.
type InputPlugin struct{}

func (InputPlugin) Build(app *App) error {
	SetResource(app.World(), &Input{pressed: make(map[string]bool)})
	return nil
}

// Accessibility mirrors the host's assistive-technology state. Never
// requested in a worker context.
type Accessibility struct {
	Requested bool
}

// AccessibilityPlugin installs the [Accessibility] resource.
type AccessibilityPlugin struct{}

func (AccessibilityPlugin) Build(app *App) error {
	SetResource(app.World(), Accessibility{})
	return nil
}
