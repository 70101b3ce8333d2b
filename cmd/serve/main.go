// Command serve is the dev server for the demo. It serves the generated
// index page, the wasm glue and the two wasm binaries out of a dist
// directory, taking care of the worker's <name>.js / <name>_bg.wasm naming
// convention and the application/wasm content type.
//
// Expected dist layout (see README for the build commands):
//
//	dist/wasm_exec.js
//	dist/app_bg.wasm
//	dist/render_worker_bg.wasm
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dist := flag.String("dist", "dist", "directory holding the built artifacts")
	name := flag.String("name", "render_worker", "logical worker artifact name")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	index, err := renderIndex(Page{Title: "gg webworker example", AppWasm: "/app_bg.wasm"})
	if err != nil {
		logger.Error("render index", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(index)
	})
	// The worker bootstrap imports the glue under the worker's own name.
	mux.Handle("/"+*name+".js", serveFile(filepath.Join(*dist, "wasm_exec.js")))
	mux.Handle("/wasm_exec.js", serveFile(filepath.Join(*dist, "wasm_exec.js")))
	mux.Handle("/app_bg.wasm", serveFile(filepath.Join(*dist, "app_bg.wasm")))
	mux.Handle("/"+*name+"_bg.wasm", serveFile(filepath.Join(*dist, *name+"_bg.wasm")))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("serving", "addr", *addr, "dist", *dist, "worker", *name)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serveFile(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		f, err := os.Open(path)
		if err != nil {
			http.Error(w, fmt.Sprintf("%s not built yet", filepath.Base(path)), http.StatusNotFound)
			return
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, path, st.ModTime(), f)
	})
}
