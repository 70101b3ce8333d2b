package engine

import "log/slog"

// DefaultPlugins assembles the worker-flavored plugin set: everything 2D
// sprite rendering needs and nothing that assumes a main browser thread.
// Plugin order matters: diagnostics read time and frame count, the
// primary-window fix-up needs the window spawned, and the sprite pass needs
// the asset stores.
type DefaultPlugins struct {
	// PrimaryWindow configures the render target. Required for rendering;
	// leaving it nil makes RegisterPrimaryWindow fail the build.
	PrimaryWindow *Window

	// Logger for the whole app, slog.Default() when nil.
	Logger *slog.Logger

	// Mode defaults to RunOnce.
	Mode RunMode
}

func (d DefaultPlugins) Plugins() []Plugin {
	return []Plugin{
		LogPlugin{Logger: d.Logger},
		TimePlugin{},
		FrameCountPlugin{},
		DiagnosticsPlugin{},
		InputPlugin{},
		WindowPlugin{PrimaryWindow: d.PrimaryWindow},
		AccessibilityPlugin{},
		RegisterPrimaryWindow{},
		AssetPlugin{},
		RenderPlugin{},
		SpritePlugin{},
		ScheduleRunnerPlugin{Mode: d.Mode},
	}
}
