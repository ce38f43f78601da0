package glide

import "context"

// Backend is the boundary the reactor drives to make requested geometry
// real. It wraps the OS accessibility/window-server/space APIs the core
// deliberately does not implement. Production code supplies a
// concrete implementation that talks to the real window server; tests
// supply a recording fake.
type Backend interface {
	// SetWindowFrame asks the owning application's worker task to move
	// window to rect, tagged with txn so the worker can echo it back.
	SetWindowFrame(ctx context.Context, window WindowId, rect Rect, txn TransactionId) error

	// BeginWindowAnimation tells the worker to suspend event-generated
	// feedback for window until EndWindowAnimation.
	BeginWindowAnimation(ctx context.Context, window WindowId, txn TransactionId) error

	// EndWindowAnimation resumes feedback and has the worker read back the
	// window's final frame.
	EndWindowAnimation(ctx context.Context, window WindowId, txn TransactionId) error

	// RaiseWindow brings window to the front within its application,
	// tagged with a sequence token the worker echoes back on completion
	// or timeout.
	RaiseWindow(ctx context.Context, window WindowId, sequenceToken uint64) error

	// StartObserving/StopObserving subscribe or unsubscribe AX
	// notifications for window.
	StartObserving(ctx context.Context, window WindowId) error
	StopObserving(ctx context.Context, window WindowId) error
}

// RequestKind tags the variant of a Request emitted to a Backend.
type RequestKind int

const (
	RequestSetWindowFrame RequestKind = iota
	RequestBeginWindowAnimation
	RequestEndWindowAnimation
	RequestRaiseWindow
	RequestStartObserving
	RequestStopObserving
)

func (k RequestKind) String() string {
	switch k {
	case RequestSetWindowFrame:
		return "set-window-frame"
	case RequestBeginWindowAnimation:
		return "begin-window-animation"
	case RequestEndWindowAnimation:
		return "end-window-animation"
	case RequestRaiseWindow:
		return "raise-window"
	case RequestStartObserving:
		return "start-observing"
	case RequestStopObserving:
		return "stop-observing"
	default:
		return "unknown-request"
	}
}

// Request is one outbound, per-application instruction the reactor
// emits. The reactor builds these; orchestrator.go is responsible for
// routing each to the Backend call above matching its Kind.
type Request struct {
	Kind RequestKind
	Window WindowId
	Rect Rect
	Txn TransactionId
	SequenceToken uint64
}
