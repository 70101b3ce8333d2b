package engine

// RunMode selects the schedule runner's strategy. The zero value is
// [RunOnce]: this repository's engine instances execute a single pass and
// let the hosting context go idle.
type RunMode int

const (
	// RunOnce executes exactly one tick, then returns.
	RunOnce RunMode = iota

	// RunLoop ticks until an [AppExit] resource shows up.
	RunLoop
)

// AppExit stops a looping runner when set as a resource.
type AppExit struct{}

// ScheduleRunnerPlugin installs the app runner.
type ScheduleRunnerPlugin struct {
	Mode RunMode
}

func (p ScheduleRunnerPlugin) Build(app *App) error {
	switch p.Mode {
	case RunOnce:
		app.SetRunner((*App).Tick)
	case RunLoop:
		app.SetRunner(func(app *App) error {
			for {
				if err := app.Tick(); err != nil {
					return err
				}
				if _, exit := Resource[AppExit](app.World()); exit {
					return nil
				}
			}
		})
	}
	return nil
}
