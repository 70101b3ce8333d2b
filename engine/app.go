// Package engine is a small plugin-driven 2D render engine.
//
// An [App] owns a [World] and a set of systems grouped into schedules.
// Subsystems are wired in through [Plugin] values; [DefaultPlugins] assembles
// the reduced set this repository needs: logging, time, diagnostics, input
// and accessibility stubs, window and surface-handle registration, an asset
// store, and a gg-backed sprite pipeline. The schedule runner decides whether
// the app ticks once and returns or keeps looping.
package engine

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// ScheduleLabel names a system group. Systems run label by label:
// Startup once at App.Run, then Update and Render each tick.
type ScheduleLabel int

const (
	Startup ScheduleLabel = iota
	Update
	Render
)

// System is a unit of app logic. A non-nil error aborts the run; there is no
// partial-failure mode.
type System func(*App) error

// Plugin wires one subsystem into an app. Build runs synchronously while the
// app is being assembled, before any schedule executes.
type Plugin interface {
	Build(*App) error
}

// PluginFunc adapts a plain function to [Plugin].
type PluginFunc func(*App) error

func (f PluginFunc) Build(app *App) error { return f(app) }

// RenderPass draws into the frame's drawing context. Passes run in
// registration order inside the Render schedule.
type RenderPass func(*App, *gg.Context) error

// App assembles a world, plugins and systems into a runnable engine
// instance. Instances are single-shot: build, Run, discard.
type App struct {
	world     *World
	logger    *slog.Logger
	schedules map[ScheduleLabel][]System
	passes    []RenderPass
	runner    func(*App) error
}

func New() *App {
	return &App{
		world:     NewWorld(),
		logger:    slog.New(discardHandler{}),
		schedules: make(map[ScheduleLabel][]System),
	}
}

func (a *App) World() *World { return a.world }

func (a *App) Logger() *slog.Logger { return a.logger }

// SetLogger replaces the app logger. Usually done by [LogPlugin].
func (a *App) SetLogger(l *slog.Logger) {
	assert(l != nil, "app logger must not be nil")
	a.logger = l
}

// AddSystems appends systems to the named schedule.
func (a *App) AddSystems(label ScheduleLabel, systems ...System) *App {
	a.schedules[label] = append(a.schedules[label], systems...)
	return a
}

// AddRenderPass appends a draw pass to the frame pipeline.
func (a *App) AddRenderPass(p RenderPass) *App {
	a.passes = append(a.passes, p)
	return a
}

// SetRunner replaces the run strategy. The default runner executes a single
// tick.
func (a *App) SetRunner(run func(*App) error) { a.runner = run }

// AddPlugins builds each plugin in order. The first failure aborts assembly.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := p.Build(a); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runSchedule(label ScheduleLabel) error {
	for _, sys := range a.schedules[label] {
		if err := sys(a); err != nil {
			return err
		}
	}
	return nil
}

// Tick executes one Update and Render pass.
func (a *App) Tick() error {
	if err := a.runSchedule(Update); err != nil {
		return err
	}
	return a.runSchedule(Render)
}

// Run executes the Startup schedule once, then hands control to the runner.
// It returns when the runner does; for a run-once runner that is after a
// single tick.
func (a *App) Run() error {
	if err := a.runSchedule(Startup); err != nil {
		return err
	}
	if a.runner == nil {
		return a.Tick()
	}
	return a.runner(a)
}
