//go:build js && wasm

package offscreen

import (
	"fmt"
	"image"
	"image/draw"
	"syscall/js"

	"github.com/haibane-tenshi/gg-webworker-example/internal/sys"
)

// BrowserEnv returns the host environment of the main browser thread.
func BrowserEnv() Env { return browserEnv{} }

type browserEnv struct{}

func (browserEnv) AppendCanvas(size Size) (Canvas, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, fmt.Errorf("no document in this context")
	}
	body := doc.Get("body")
	if body.IsUndefined() || body.IsNull() {
		return nil, fmt.Errorf("document has no body")
	}

	var el js.Value
	err := func() (err error) {
		defer sys.CatchException(&err)
		el = doc.Call("createElement", "canvas")
		el.Set("width", size.Width)
		el.Set("height", size.Height)
		body.Call("appendChild", el)
		return nil
	}()
	if err != nil {
		return nil, err
	}
	return &browserCanvas{el: el}, nil
}

func (browserEnv) SpawnWorker(name string) (Port, error) {
	origin, err := sys.Origin()
	if err != nil {
		return nil, err
	}
	url, err := sys.CreateScriptURL(sys.BootstrapScript(origin, name))
	if err != nil {
		return nil, err
	}

	var worker js.Value
	err = func() (err error) {
		defer sys.CatchException(&err)
		opts := js.Global().Get("Object").New()
		opts.Set("name", name)
		worker = js.Global().Get("Worker").New(url, opts)
		return nil
	}()
	if err != nil {
		return nil, fmt.Errorf("spawn worker: %w", err)
	}
	return &browserPort{target: worker}, nil
}

type browserCanvas struct {
	el js.Value
}

func (c *browserCanvas) TransferControl() (Surface, error) {
	var off js.Value
	err := func() (err error) {
		defer sys.CatchException(&err)
		off = c.el.Call("transferControlToOffscreen")
		return nil
	}()
	if err != nil {
		return nil, err
	}
	return &browserSurface{canvas: off}, nil
}

// browserPort speaks to a worker (from the main thread) or to the spawning
// context (from inside the worker) over the host's message events.
type browserPort struct {
	target js.Value

	// held so the handler is not collected while the port lives
	onmessage js.Func
}

func (p *browserPort) OnMessage(h func(Message)) {
	p.onmessage = js.FuncOf(func(this js.Value, args []js.Value) any {
		h(decodeEvent(args[0]))
		return js.Null()
	})
	p.target.Set("onmessage", p.onmessage)
}

func (p *browserPort) Post(m Message) (err error) {
	defer sys.CatchException(&err)
	switch m.Kind {
	case MsgReady:
		// Empty array by convention; the receiver only looks at arrival.
		p.target.Call("postMessage", js.Global().Get("Array").New())
	case MsgSurface:
		s, ok := m.Surface.(*browserSurface)
		assert(ok, "cannot transfer %T through a browser port", m.Surface)
		// A transferable must appear both as the payload and in the
		// transfer list, or the host rejects the post.
		transfer := js.Global().Get("Array").New()
		transfer.Call("push", s.canvas)
		p.target.Call("postMessage", s.canvas, transfer)
	default:
		return fmt.Errorf("cannot post %s message", m.Kind)
	}
	return nil
}

func decodeEvent(event js.Value) Message {
	data := event.Get("data")
	offscreenCanvas := js.Global().Get("OffscreenCanvas")
	if !offscreenCanvas.IsUndefined() && data.InstanceOf(offscreenCanvas) {
		return WithSurface(&browserSurface{canvas: data})
	}
	if data.InstanceOf(js.Global().Get("Array")) {
		return Ready()
	}
	desc := "null"
	if !data.IsNull() && !data.IsUndefined() {
		desc = data.Get("constructor").Get("name").String()
	}
	return Unclassified(desc)
}

// WorkerScope returns the worker-side host capability. Call only inside a
// dedicated worker.
func WorkerScope() Scope {
	return &browserPort{target: js.Global()}
}

// browserSurface wraps an OffscreenCanvas and presents frames through its
// 2d context.
type browserSurface struct {
	canvas js.Value
	ctx2d  js.Value
}

func (s *browserSurface) Size() Size {
	return Size{
		Width:  s.canvas.Get("width").Int(),
		Height: s.canvas.Get("height").Int(),
	}
}

func (s *browserSurface) Present(img image.Image) (err error) {
	defer sys.CatchException(&err)

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()

	if s.ctx2d.IsUndefined() {
		s.ctx2d = s.canvas.Call("getContext", "2d")
		if s.ctx2d.IsNull() {
			return fmt.Errorf("offscreen canvas has no 2d context")
		}
	}

	buf := js.Global().Get("Uint8ClampedArray").New(len(rgba.Pix))
	js.CopyBytesToJS(buf, rgba.Pix)
	imageData := js.Global().Get("ImageData").New(buf, w, h)
	s.ctx2d.Call("putImageData", imageData, 0, 0)
	return nil
}
