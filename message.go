package offscreen

import "fmt"

// MessageKind tags the payload of a cross-context message.
type MessageKind int

const (
	// MsgReady is the worker's readiness signal. It carries no payload;
	// receivers only care about its arrival.
	MsgReady MessageKind = iota

	// MsgSurface carries a [Surface]. Posting it transfers ownership to the
	// receiving context.
	MsgSurface

	// MsgUnknown marks a payload the receiving side could not classify.
	// It survives decoding so the fault can be reported with context
	// instead of being thrown away at the host boundary.
	MsgUnknown
)

func (k MessageKind) String() string {
	switch k {
	case MsgReady:
		return "ready"
	case MsgSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Message is the unit of exchange between the two contexts.
// Exactly two messages flow in a successful run: one ready signal from the
// worker, then one surface from the launcher.
type Message struct {
	Kind    MessageKind
	Surface Surface

	// desc describes an unclassified payload for error reporting.
	desc string
}

// Ready returns the empty readiness signal.
func Ready() Message { return Message{Kind: MsgReady} }

// WithSurface wraps s for posting. s must be non-nil.
func WithSurface(s Surface) Message {
	assert(s != nil, "surface message must carry a surface")
	return Message{Kind: MsgSurface, Surface: s}
}

// Unclassified marks a payload that did not match any known message shape.
// desc should name the concrete type the host reported.
func Unclassified(desc string) Message {
	return Message{Kind: MsgUnknown, desc: desc}
}

// DecodeSurface extracts the surface from m, or reports what arrived
// instead. The handoff has no recovery path, so callers treat an error as
// fatal rather than waiting for another message.
func DecodeSurface(m Message) (Surface, error) {
	if m.Kind != MsgSurface || m.Surface == nil {
		got := m.Kind.String()
		if m.desc != "" {
			got = m.desc
		}
		return nil, fmt.Errorf("expected a surface payload, got %s", got)
	}
	return m.Surface, nil
}
