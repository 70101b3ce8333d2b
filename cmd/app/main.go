//go:build js && wasm

// Command app runs on the main browser thread. It attaches the render
// canvas to the page, spawns the render worker and hands the canvas's
// detached surface over to it. Rendering itself happens in the worker.
package main

import (
	"log/slog"
	"os"

	offscreen "github.com/haibane-tenshi/gg-webworker-example"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := offscreen.Launch(offscreen.BrowserEnv(), offscreen.LaunchOptions{}); err != nil {
		logger.Error("launch failed", "error", err)
		os.Exit(1)
	}
	logger.Info("worker spawned, handoff pending", "worker", offscreen.DefaultWorkerName)

	// The handoff completes on the event loop; keep the runtime alive.
	select {}
}
