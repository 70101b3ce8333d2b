package offscreen

// Port is one end of an asynchronous, ordered, at-most-once message link
// between two execution contexts. Delivery is driven by the host event loop;
// there is no timeout, retry or backpressure, so a lost message leaves the
// dependent side waiting forever.
type Port interface {
	// OnMessage installs the handler for incoming messages. At most one
	// handler is active; installing it is part of context initialization
	// and must happen before the peer is told to send.
	OnMessage(func(Message))

	// Post sends m to the peer. A surface payload is transferred, not
	// copied: after Post returns the sender's reference is dead.
	Post(m Message) error
}

// Env is the host capability handed to the main-context launcher.
type Env interface {
	// AppendCanvas creates a canvas of the given size and attaches it to the
	// document body. It fails when the document or body is missing.
	AppendCanvas(Size) (Canvas, error)

	// SpawnWorker starts the worker context for the named build artifact and
	// returns the port to it.
	SpawnWorker(name string) (Port, error)
}

// Canvas is a drawable element attached to the page.
type Canvas interface {
	// TransferControl detaches the canvas's drawing surface so it can be
	// moved to another context. It can be called once; the canvas keeps
	// displaying whatever the surface's new owner renders.
	TransferControl() (Surface, error)
}

// Scope is the host capability handed to the worker-context bootstrapper:
// the port back to the context that spawned it.
type Scope interface {
	Port
}
