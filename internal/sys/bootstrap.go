// Package sys provides low-level primitives for interacting with Javascript.
package sys

import "fmt"

// BootstrapScript builds the inline script a spawned worker runs first.
// It loads the wasm glue and payload for the named artifact from origin,
// following the <name>.js / <name>_bg.wasm convention, then starts the
// worker binary.
func BootstrapScript(origin, name string) string {
	glue := fmt.Sprintf("%s/%s.js", origin, name)
	payload := fmt.Sprintf("%s/%s_bg.wasm", origin, name)
	return fmt.Sprintf(
		`importScripts(%q);`+
			`const go = new Go();`+
			`WebAssembly.instantiateStreaming(fetch(%q), go.importObject)`+
			`.then((r) => go.run(r.instance));`,
		glue, payload)
}
