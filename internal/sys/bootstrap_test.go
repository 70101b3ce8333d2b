package sys

import (
	"strings"
	"testing"
)

func TestBootstrapScript(t *testing.T) {
	got := BootstrapScript("https://example.com:8443", "render_worker")

	for _, want := range []string{
		`importScripts("https://example.com:8443/render_worker.js")`,
		`fetch("https://example.com:8443/render_worker_bg.wasm")`,
		"go.run(r.instance)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("script missing %q:\n%s", want, got)
		}
	}

	// The glue must be loaded before the payload is instantiated.
	if strings.Index(got, "importScripts") > strings.Index(got, "instantiateStreaming") {
		t.Error("glue loaded after payload instantiation")
	}
}
