//go:build !js

// empty signatures, makes the IDE happy

package offscreen

// BrowserEnv is only available under GOOS=js GOARCH=wasm.
func BrowserEnv() Env { panic("not implemented") }

// WorkerScope is only available under GOOS=js GOARCH=wasm.
func WorkerScope() Scope { panic("not implemented") }
