package glide

import (
	"errors"
	"fmt"
)

// invariantf panics with a "glide: "-prefixed diagnostic. An invariant
// violation is a programming error: the reactor aborts and the process
// supervisor restarts it, so panicking here (rather than returning an
// error every caller must remember to check) is the right shape.
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf("glide: "+format, args...))
}

// Sentinel errors for the recoverable, caller-facing failures. Where one
// is returned it is returned, never panicked: a reactor or layout manager
// caller is expected to handle it in the ordinary course of events (e.g.
// an OS notification racing a window's removal).
var (
	// ErrWindowAlreadyBound is returned by the window observer when a leaf
	// is attached for a window already present in the tree (the
	// window/node bijection invariant).
	ErrWindowAlreadyBound = errors.New("glide: window already bound to a node")

	// ErrUnknownWindow names an operation on a WindowId not present in the
	// model. No function in this package returns it: the model never
	// panics on unknown windows, its operations return without effect,
	// and the reactor drops such events.
	ErrUnknownWindow = errors.New("glide: unknown window")

	// ErrUnknownSpace names an operation on a SpaceId with no entry in the
	// space layout mapping. No function in this package returns it;
	// SpaceLayouts.Get creates an entry for an unknown space.
	ErrUnknownSpace = errors.New("glide: unknown space")

	// ErrStaleTransaction names an inbound event carrying a transaction
	// older than the one the reactor last issued for that window. No
	// function in this package returns it: the reactor drops such events
	// itself, without mutating the model.
	ErrStaleTransaction = errors.New("glide: stale transaction")
)

// FocusResult is the outcome of a directional focus command. A failed
// focus is not an error: there is simply no adjacent sibling
// in that direction along the selection path.
type FocusResult int

const (
	// FocusMoved indicates the selection path changed.
	FocusMoved FocusResult = iota
	// FocusNoMatch indicates no ancestor had an adjacent sibling in the
	// requested direction; the selection path is unchanged.
	FocusNoMatch
)

func (f FocusResult) String() string {
	if f == FocusMoved {
		return "moved"
	}
	return "no-match"
}
