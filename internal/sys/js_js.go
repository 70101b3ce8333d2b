//go:build js && wasm

package sys

import (
	"fmt"
	"syscall/js"
)

// CatchException converts a Javascript exception thrown during the enclosing
// call into an error. Use in a defer:
//
//	func post() (err error) {
//		defer sys.CatchException(&err)
//		worker.Call("postMessage", msg)
//		return nil
//	}
func CatchException(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = jsErr
			return
		}
		*err = fmt.Errorf("host exception: %v", r)
	}
}

// Origin returns the page origin, e.g. "https://example.com:8443".
func Origin() (string, error) {
	loc := js.Global().Get("location")
	if loc.IsUndefined() {
		return "", fmt.Errorf("no location in this context")
	}
	return loc.Get("origin").String(), nil
}

// CreateScriptURL wraps script in a Blob and returns an object URL for it.
// The URL stays valid for the lifetime of the page.
func CreateScriptURL(script string) (js.Value, error) {
	blob, err := newBlob(script, "text/javascript")
	if err != nil {
		return js.Value{}, err
	}

	var url js.Value
	err = func() (err error) {
		defer CatchException(&err)
		url = js.Global().Get("URL").Call("createObjectURL", blob)
		return nil
	}()
	if err != nil {
		return js.Value{}, fmt.Errorf("create object URL: %w", err)
	}
	return url, nil
}

func newBlob(content, mime string) (_ js.Value, err error) {
	defer CatchException(&err)
	parts := js.Global().Get("Array").New()
	parts.Call("push", content)
	opts := js.Global().Get("Object").New()
	opts.Set("type", mime)
	return js.Global().Get("Blob").New(parts, opts), nil
}
