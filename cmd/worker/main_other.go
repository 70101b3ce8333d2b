//go:build !js

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "worker targets the browser: build with GOOS=js GOARCH=wasm")
	os.Exit(2)
}
