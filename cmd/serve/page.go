package main

import (
	"bytes"
	"html/template"
)

// Page fills the index template. AppWasm is the URL of the main-thread
// binary; the worker is loaded later by the binary itself, not by the page.
type Page struct {
	Title   string
	AppWasm string
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="/wasm_exec.js"></script>
</head>
<body>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("{{.AppWasm}}"), go.importObject).then((r) => go.run(r.instance));
</script>
</body>
</html>
`))

func renderIndex(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
