// Package x11 is a reference glide.Backend implementation over raw X11,
// using jezek/xgb directly (no Xlib, no cgo) — a low-level-protocol
// posture rather than a higher-level toolkit. It is a reference: enough
// to move/resize/raise a real window and to start/stop
// structure-notify watching, not a complete window manager.
package x11

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/glide-wm/glide"
)

// Backend drives window geometry over an X11 connection. It implements
// glide.Backend.
type Backend struct {
	conn *xgb.Conn
	root xproto.Window

	// windows maps glide.WindowId to the X window it was discovered as;
	// populated by the (out-of-core) discovery code that feeds
	// WindowDiscovered events, not by this package.
	windows map[glide.WindowId]xproto.Window
}

// New connects to the X server named by the DISPLAY environment variable.
func New() (*Backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	return &Backend{conn: conn, root: screen.Root, windows: make(map[glide.WindowId]xproto.Window)}, nil
}

// Close releases the X connection.
func (b *Backend) Close() { b.conn.Close() }

// Track associates a glide.WindowId with the concrete X window it was
// discovered as.
func (b *Backend) Track(id glide.WindowId, win xproto.Window) { b.windows[id] = win }

func (b *Backend) resolve(id glide.WindowId) (xproto.Window, error) {
	win, ok := b.windows[id]
	if !ok {
		return 0, fmt.Errorf("x11: unknown window %v", id)
	}
	return win, nil
}

// SetWindowFrame implements glide.Backend.
func (b *Backend) SetWindowFrame(ctx context.Context, id glide.WindowId, rect glide.Rect, txn glide.TransactionId) error {
	win, err := b.resolve(id)
	if err != nil {
		return err
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{
		uint32(int32(rect.X)),
		uint32(int32(rect.Y)),
		uint32(rect.W),
		uint32(rect.H),
	}
	return xproto.ConfigureWindowChecked(b.conn, win, mask, values).Check()
}

// BeginWindowAnimation implements glide.Backend. X11 has no accessibility
// feedback channel to suspend the way the macOS-flavored original does;
// this is a no-op placeholder for a protocol where there is nothing to
// quiesce.
func (b *Backend) BeginWindowAnimation(ctx context.Context, id glide.WindowId, txn glide.TransactionId) error {
	return nil
}

// EndWindowAnimation implements glide.Backend; see BeginWindowAnimation.
func (b *Backend) EndWindowAnimation(ctx context.Context, id glide.WindowId, txn glide.TransactionId) error {
	return nil
}

// RaiseWindow implements glide.Backend.
func (b *Backend) RaiseWindow(ctx context.Context, id glide.WindowId, sequenceToken uint64) error {
	win, err := b.resolve(id)
	if err != nil {
		return err
	}
	mask := uint16(xproto.ConfigWindowStackMode)
	values := []uint32{uint32(xproto.StackModeAbove)}
	return xproto.ConfigureWindowChecked(b.conn, win, mask, values).Check()
}

// StartObserving implements glide.Backend by subscribing to
// StructureNotify on the window so moves/resizes from outside Glide
// generate events the reactor's WindowMoved/WindowResized handling
// expects.
func (b *Backend) StartObserving(ctx context.Context, id glide.WindowId) error {
	win, err := b.resolve(id)
	if err != nil {
		return err
	}
	mask := uint32(xproto.EventMaskStructureNotify)
	return xproto.ChangeWindowAttributesChecked(b.conn, win, xproto.CwEventMask, []uint32{mask}).Check()
}

// StopObserving implements glide.Backend.
func (b *Backend) StopObserving(ctx context.Context, id glide.WindowId) error {
	win, err := b.resolve(id)
	if err != nil {
		return err
	}
	return xproto.ChangeWindowAttributesChecked(b.conn, win, xproto.CwEventMask, []uint32{0}).Check()
}
