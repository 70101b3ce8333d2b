//go:build js && wasm

// Command worker runs inside the dedicated worker spawned by cmd/app. It
// waits for the transferred surface, builds an engine instance around it and
// renders the demo scene in a single pass, after which the worker goes idle.
package main

import (
	"log/slog"
	"os"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
	"github.com/haibane-tenshi/gg-webworker-example/engine"
	"github.com/haibane-tenshi/gg-webworker-example/scene"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := offscreen.Serve(offscreen.WorkerScope(), func(surface offscreen.Surface) error {
		return singlePass(logger, surface)
	})
	if err != nil {
		logger.Error("render worker failed", "error", err)
		os.Exit(1)
	}
	logger.Info("render pass complete")
}

func singlePass(logger *slog.Logger, surface offscreen.Surface) error {
	app := engine.New()
	err := app.AddPlugins(engine.DefaultPlugins{
		PrimaryWindow: &engine.Window{
			Title:   "render worker",
			Width:   offscreen.Viewport.Width,
			Height:  offscreen.Viewport.Height,
			Surface: surface,
		},
		Logger: logger,
	}.Plugins()...)
	if err != nil {
		return err
	}
	app.AddSystems(engine.Startup, scene.Spawn)
	return app.Run()
}
