package offscreen

import (
	"fmt"
	"image"
	"sync"
)

// MemoryEnv is an in-process host environment. Workers run as goroutines,
// ports are channel-backed, and surfaces render into plain images. It
// reproduces the browser semantics that matter to the handoff: messages are
// ordered and at-most-once, and posting a surface revokes the sender's
// access to it.
//
// MemoryEnv also records a trace of host events so tests can check message
// ordering without a real browser.
type MemoryEnv struct {
	worker func(Scope)

	mu       sync.Mutex
	canvases []*MemoryCanvas
	trace    []string
	noDoc    bool
}

// NewMemoryEnv returns an environment whose spawned workers execute worker
// on their own goroutine.
func NewMemoryEnv(worker func(Scope)) *MemoryEnv {
	return &MemoryEnv{worker: worker}
}

// DropDocument makes the environment report a missing document, for testing
// launcher behavior outside a page.
func (e *MemoryEnv) DropDocument() { e.noDoc = true }

// Canvases returns the canvas elements attached so far.
func (e *MemoryEnv) Canvases() []*MemoryCanvas {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*MemoryCanvas(nil), e.canvases...)
}

// Trace returns the host events observed so far, in order.
// Entries look like "spawn render_worker", "worker->main ready",
// "main->worker surface".
func (e *MemoryEnv) Trace() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.trace...)
}

func (e *MemoryEnv) record(ev string) {
	e.mu.Lock()
	e.trace = append(e.trace, ev)
	e.mu.Unlock()
}

// AppendCanvas implements [Env].
func (e *MemoryEnv) AppendCanvas(size Size) (Canvas, error) {
	if e.noDoc {
		return nil, fmt.Errorf("no document in this environment")
	}
	c := &MemoryCanvas{size: size}
	e.mu.Lock()
	e.canvases = append(e.canvases, c)
	e.mu.Unlock()
	e.record(fmt.Sprintf("append canvas %dx%d", size.Width, size.Height))
	return c, nil
}

// SpawnWorker implements [Env].
func (e *MemoryEnv) SpawnWorker(name string) (Port, error) {
	if e.worker == nil {
		return nil, fmt.Errorf("no worker entry point registered")
	}
	main, remote := newPortPair(e)
	e.record("spawn " + name)
	go e.worker(remote)
	return main, nil
}

// MemoryCanvas is a canvas element attached to the in-memory document.
type MemoryCanvas struct {
	size Size

	mu          sync.Mutex
	transferred bool
	surface     *MemorySurface
}

// Size reports the element's width and height.
func (c *MemoryCanvas) Size() Size { return c.size }

// TransferControl implements [Canvas]. A second call fails, matching the
// one-shot semantics of the browser equivalent.
func (c *MemoryCanvas) TransferControl() (Surface, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transferred {
		return nil, fmt.Errorf("canvas control already transferred")
	}
	c.transferred = true
	c.surface = newMemorySurface(c.size)
	return c.surface, nil
}

// Displayed returns what the canvas currently shows: the last image
// presented to its surface, wherever that surface now lives. It returns nil
// before the first present.
func (c *MemoryCanvas) Displayed() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == nil {
		return nil
	}
	return c.surface.px.snapshot()
}

// memPixmap is the surface backing store, shared by every handle the
// surface had over its lifetime.
type memPixmap struct {
	mu       sync.Mutex
	size     Size
	img      *image.RGBA
	presents int
}

func (p *memPixmap) snapshot() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img
}

// MemorySurface is a [Surface] handle over an in-memory pixmap.
// Transferring the surface through a port yields a fresh live handle on the
// receiving side and kills the sender's handle.
type MemorySurface struct {
	px *memPixmap

	mu    sync.Mutex
	moved bool
}

// NewMemorySurface returns a standalone surface of the given size, useful
// for exercising renderers without a canvas or a handoff.
func NewMemorySurface(size Size) *MemorySurface {
	return newMemorySurface(size)
}

func newMemorySurface(size Size) *MemorySurface {
	return &MemorySurface{px: &memPixmap{size: size}}
}

// Size implements [Surface].
func (s *MemorySurface) Size() Size { return s.px.size }

// Present implements [Surface]. It fails if this handle has been
// transferred away.
func (s *MemorySurface) Present(img image.Image) error {
	s.mu.Lock()
	moved := s.moved
	s.mu.Unlock()
	if moved {
		return fmt.Errorf("surface was transferred to another context")
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
	}

	s.px.mu.Lock()
	s.px.img = rgba
	s.px.presents++
	s.px.mu.Unlock()
	return nil
}

// Image returns the last frame presented to the pixmap, nil before the
// first present.
func (s *MemorySurface) Image() *image.RGBA {
	return s.px.snapshot()
}

// Presented reports how many frames reached the pixmap.
func (s *MemorySurface) Presented() int {
	s.px.mu.Lock()
	defer s.px.mu.Unlock()
	return s.px.presents
}

// transfer invalidates this handle and returns the receiver's replacement.
func (s *MemorySurface) transfer() (*MemorySurface, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.moved {
		return nil, fmt.Errorf("surface already transferred")
	}
	s.moved = true
	return &MemorySurface{px: s.px}, nil
}

// memoryPort is one end of a channel-backed message link. Delivery is
// ordered and asynchronous: posts land in the peer's inbox, and a dispatcher
// goroutine drains it once the peer installs its handler. Messages posted
// earlier wait in the inbox, matching how browser message events buffer
// until the receiving context finishes initializing.
type memoryPort struct {
	env   *MemoryEnv
	label string
	peer  *memoryPort

	inbox       chan Message
	handler     func(Message)
	handlerOnce sync.Once
	handlerSet  chan struct{}
}

func newPortPair(env *MemoryEnv) (main, remote *memoryPort) {
	main = newMemoryPort(env, "main->worker")
	remote = newMemoryPort(env, "worker->main")
	main.peer = remote
	remote.peer = main
	return main, remote
}

func newMemoryPort(env *MemoryEnv, label string) *memoryPort {
	p := &memoryPort{
		env:        env,
		label:      label,
		inbox:      make(chan Message, 16),
		handlerSet: make(chan struct{}),
	}
	go p.dispatch()
	return p
}

// dispatch runs for the life of the port, like the event loop behind a
// browser port.
func (p *memoryPort) dispatch() {
	<-p.handlerSet
	for m := range p.inbox {
		p.handler(m)
	}
}

func (p *memoryPort) OnMessage(h func(Message)) {
	set := false
	p.handlerOnce.Do(func() {
		p.handler = h
		close(p.handlerSet)
		set = true
	})
	assert(set, "port handler installed twice")
}

func (p *memoryPort) Post(m Message) error {
	if m.Kind == MsgSurface {
		ms, ok := m.Surface.(*MemorySurface)
		if !ok {
			return fmt.Errorf("cannot transfer %T through an in-memory port", m.Surface)
		}
		moved, err := ms.transfer()
		if err != nil {
			return err
		}
		m.Surface = moved
	}
	if p.env != nil {
		p.env.record(fmt.Sprintf("%s %s", p.label, m.Kind))
	}
	p.peer.inbox <- m
	return nil
}
