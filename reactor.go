package glide

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// screenSpace pairs a screen with the space currently displayed on it,
// the unit the reactor recomputes layout for.
type screenSpace struct {
	Space SpaceId
	Screen ScreenSize
}

// Reactor is the single-task owner of every layout and the layout
// manager. It has no channels or goroutines of its own baked in — Handle/HandleBatch are plain synchronous calls so
// they can be driven by Orchestrator.Run's event loop, by tests, or by
// ReplayAll (trace.go) identically. Only orchestrator.go wires an actual
// inbox channel and request dispatch around it.
type Reactor struct {
	manager *Manager
	anims *AnimationSet

	spaceScreen map[SpaceId]ScreenSize // last screen each space was shown on

	txn map[WindowId]TransactionId
	lastFrame map[WindowId]Frame

	untrackedFails map[WindowId]int

	// suppressFocusFollowsMouse suppresses focus-follows-mouse changes
	// while a SpaceChanged event is pending. Set on SpaceChanged, cleared
	// after the next non-SpaceChanged event finishes processing.
	suppressFocusFollowsMouse bool

	raiseSeq uint64

	// Debug gates the debug-only invariant checks (tree depth, child
	// count) on every layout tree the reactor's manager owns. See
	// Tree.Debug.
	Debug bool

	// Log receives a "debug" message whenever the reactor drops a
	// geometry event (stale transaction, or a window it does not know)
	// and a "warn" message when it evicts a repeatedly-failing window.
	// The zero value is a no-op.
	Log Logger
}

// SetDebug toggles Debug and propagates it to every layout tree the
// reactor's manager already owns or will create.
func (r *Reactor) SetDebug(enabled bool) {
	r.Debug = enabled
	r.manager.SetDebug(enabled)
}

// NewReactor creates a reactor with an empty model and the given starting
// configuration.
func NewReactor(cfg Config) *Reactor {
	return &Reactor{
		manager: NewManager(cfg),
		anims: NewAnimationSet(),
		spaceScreen: make(map[SpaceId]ScreenSize),
		txn: make(map[WindowId]TransactionId),
		lastFrame: make(map[WindowId]Frame),
		untrackedFails: make(map[WindowId]int),
	}
}

// Manager exposes the underlying layout manager for callers (e.g. a CLI
// socket or key-binding layer) that need to issue commands outside the
// event vocabulary, and for tests.
func (r *Reactor) Manager() *Manager { return r.manager }

// Handle processes a single event to completion: mutate, recompute every
// affected layout, diff, and return the resulting requests. Equivalent to
// HandleBatch([]Event{evt}).
func (r *Reactor) Handle(evt Event) []Request {
	return r.HandleBatch([]Event{evt})
}

// HandleBatch processes every event in order, coalescing layout
// recomputation: each event only marks which (space, screen) pairs it
// affected, and the batch emits at most one SetWindowFrame per window
// across the whole batch, carrying the final rectangle only. Animation ticks are expected to arrive as their own
// single-event batch; Orchestrator.Run's reactor loop never merges one
// with surrounding events. Affected pairs are recomputed in a fixed order
// (by space, then screen width and height).
func (r *Reactor) HandleBatch(batch []Event) []Request {
	affected := make(map[screenSpace]bool)
	var reqs []Request

	for _, evt := range batch {
		if evt.Kind == EventAnimationTick {
			reqs = append(reqs, r.tickAnimations(evt.Now)...)
			continue
		}
		r.processEvent(evt, affected)
		if evt.Kind != EventSpaceChanged {
			r.suppressFocusFollowsMouse = false
		}
	}

	keys := make([]screenSpace, 0, len(affected))
	for ss := range affected {
		keys = append(keys, ss)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Space != b.Space {
			return a.Space < b.Space
		}
		if a.Screen.W != b.Screen.W {
			return a.Screen.W < b.Screen.W
		}
		return a.Screen.H < b.Screen.H
	})
	for _, ss := range keys {
		reqs = append(reqs, r.recomputeAndEmit(ss.Space, ss.Screen, batchNow(batch))...)
	}
	return reqs
}

// batchNow returns the last event's Now field, used as the clock for a
// recompute that covers the whole batch.
func batchNow(batch []Event) float64 {
	if len(batch) == 0 {
		return 0
	}
	return batch[len(batch)-1].Now
}

func (r *Reactor) processEvent(evt Event, affected map[screenSpace]bool) {
	switch evt.Kind {
	case EventScreenParametersChanged:
		if space, ok := r.spaceOnScreen(evt.Screen); ok {
			r.spaceScreen[space] = evt.Screen
			affected[screenSpace{space, evt.Screen}] = true
		}

	case EventSpaceChanged:
		r.spaceScreen[evt.Space] = evt.Screen
		r.suppressFocusFollowsMouse = true
		affected[screenSpace{evt.Space, evt.Screen}] = true

	case EventWindowDiscovered:
		r.manager.WindowAdded(evt.Window, evt.Space, evt.Screen)
		r.spaceScreen[evt.Space] = evt.Screen
		affected[screenSpace{evt.Space, evt.Screen}] = true

	case EventWindowDestroyed:
		space, ok := r.manager.SpaceOf(evt.Window)
		r.manager.WindowRemoved(evt.Window)
		r.anims.Cancel(evt.Window)
		delete(r.lastFrame, evt.Window)
		delete(r.txn, evt.Window)
		delete(r.untrackedFails, evt.Window)
		if ok {
			if screen, ok := r.spaceScreen[space]; ok {
				affected[screenSpace{space, screen}] = true
			}
		}

	case EventWindowFocused, EventWindowMainChanged:
		if space, ok := r.manager.SpaceOf(evt.Window); ok {
			if screen, ok := r.spaceScreen[space]; ok {
				r.manager.FocusWindow(space, screen, evt.Window)
				affected[screenSpace{space, screen}] = true
			}
		}

	case EventWindowMoved, EventWindowResized:
		r.handleGeometryEvent(evt, affected)

	case EventMouseMoved:
		r.handleMouseMoved(evt, affected)

	case EventMouseClicked:
		// Clicks select whichever window is under the cursor; the model
		// has no hit-testing of its own (that lives in sys), so a click
		// is expected to arrive already resolved to EventWindowFocused by
		// the caller. Nothing to do at this layer beyond what
		// WindowFocused already handles.

	case EventScroll:
		if space, ok := r.spaceOnScreen(evt.Screen); ok {
			r.manager.Scroll(space, evt.Screen, deltaDirection(evt.ScrollDelta), evt.Now)
			affected[screenSpace{space, evt.Screen}] = true
		}

	case EventCommand:
		r.handleCommand(evt, affected)

	case EventConfigChanged:
		r.manager.SetConfig(evt.Config)
		for space, screen := range r.spaceScreen {
			affected[screenSpace{space, screen}] = true
		}

	case EventShutdown:
		// Handled by Orchestrator.Run's drain-to-commit-point contract; nothing to
		// mutate here beyond what's already in flight.
	}
}

// spaceOnScreen returns a space whose last recorded screen is screen;
// when several spaces qualify, the one with the lowest SpaceId.
func (r *Reactor) spaceOnScreen(screen ScreenSize) (SpaceId, bool) {
	var found SpaceId
	ok := false
	for space, s := range r.spaceScreen {
		if s == screen && (!ok || space < found) {
			found, ok = space, true
		}
	}
	return found, ok
}

func deltaDirection(delta float64) Direction {
	if delta < 0 {
		return DirLeft
	}
	return DirRight
}

// handleGeometryEvent enforces transactional consistency: an incoming
// geometry event carrying a stale last_seen_txn is dropped without
// mutating the model. A fresh one for a known window only marks that
// window's (space, screen) affected for recomputation; the model itself
// is not changed.
func (r *Reactor) handleGeometryEvent(evt Event, affected map[screenSpace]bool) {
	if evt.LastSeenTxn < r.txn[evt.Window] {
		r.log("debug", "dropped stale transaction", "window", evt.Window, "txn", evt.LastSeenTxn, "current", r.txn[evt.Window])
		return
	}
	space, ok := r.manager.SpaceOf(evt.Window)
	if !ok {
		r.log("debug", "geometry event for unknown window", "window", evt.Window)
		return
	}
	screen, ok := r.spaceScreen[space]
	if !ok {
		return
	}
	affected[screenSpace{space, screen}] = true
}

func (r *Reactor) handleMouseMoved(evt Event, affected map[screenSpace]bool) {
	if r.suppressFocusFollowsMouse {
		return
	}
	if !r.manager.Config().FocusFollowsMouse {
		return
	}
	space, ok := r.spaceOnScreen(evt.Screen)
	if !ok {
		return
	}
	affected[screenSpace{space, evt.Screen}] = true
}

func (r *Reactor) handleCommand(evt Event, affected map[screenSpace]bool) {
	space, ok := r.spaceOnScreen(evt.Screen)
	cmd := evt.Command
	markAffected := func() {
		if ok {
			affected[screenSpace{space, evt.Screen}] = true
		}
	}

	switch cmd.Kind {
	case CmdFocus:
		if ok {
			r.manager.Focus(space, evt.Screen, cmd.Dir)
			markAffected()
		}
	case CmdFocusWindow:
		if s, known := r.manager.SpaceOf(cmd.Window); known {
			if screen, known := r.spaceScreen[s]; known {
				r.manager.FocusWindow(s, screen, cmd.Window)
				affected[screenSpace{s, screen}] = true
			}
		}
	case CmdSwap:
		if ok {
			r.manager.Swap(space, evt.Screen, cmd.Dir)
			markAffected()
		}
	case CmdMove:
		if ok {
			r.manager.Move(space, evt.Screen, cmd.Dir)
			markAffected()
		}
	case CmdSplit:
		if ok {
			r.manager.Split(space, evt.Screen, cmd.Axis)
			markAffected()
		}
	case CmdGroup:
		if ok {
			r.manager.Group(space, evt.Screen, cmd.Group)
			markAffected()
		}
	case CmdUngroup:
		if ok {
			r.manager.Ungroup(space, evt.Screen)
			markAffected()
		}
	case CmdToggleFloating:
		if ok {
			r.manager.ToggleFloating(cmd.Window, evt.Screen)
			markAffected()
		}
	case CmdToggleFullscreen:
		if ok {
			r.manager.ToggleFullscreen(space, evt.Screen)
			markAffected()
		}
	case CmdResize:
		if ok {
			r.manager.ResizeWithExtent(space, evt.Screen, cmd.Edge, cmd.Pixels, float64(evt.Screen.W))
			markAffected()
		}
	case CmdBalance:
		if ok {
			r.manager.Balance(space, evt.Screen)
			markAffected()
		}
	case CmdPromote:
		if ok {
			r.manager.Promote(space, evt.Screen)
			markAffected()
		}
	case CmdDemote:
		if ok {
			r.manager.Demote(space, evt.Screen)
			markAffected()
		}
	case CmdMoveToSpace:
		r.manager.MoveToSpace(cmd.Window, cmd.Space, evt.Screen)
		affected[screenSpace{cmd.Space, evt.Screen}] = true
		markAffected()
	case CmdScroll:
		if ok {
			r.manager.Scroll(space, evt.Screen, cmd.Dir, evt.Now)
			markAffected()
		}
	case CmdSetCenteringMode:
		if ok {
			r.manager.SetCenteringMode(space, evt.Screen, cmd.Centering)
			markAffected()
		}
	case CmdToggleSpaceManaged, CmdSaveAndExit, CmdReloadConfig, CmdConfigUpdate:
		// Out of the core's scope: these are handled by the
		// CLI/config-subsystem collaborators. The reactor takes no model
		// action.
	}
}

// tickAnimations advances every in-flight window animation and emits the
// interpolated frames plus EndWindowAnimation for any that just finished.
func (r *Reactor) tickAnimations(now float64) []Request {
	_ = now // the animation step is a fixed cadence (animationStepSeconds), not derived from now; see its doc comment
	frames, finished := r.anims.Tick(animationStepSeconds)
	var reqs []Request
	finishedSet := make(map[WindowId]bool, len(finished))
	for _, w := range finished {
		finishedSet[w] = true
	}
	windows := make([]WindowId, 0, len(frames))
	for w := range frames {
		windows = append(windows, w)
	}
	sort.Slice(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		return a.Pid < b.Pid || (a.Pid == b.Pid && a.Slot < b.Slot)
	})
	for _, w := range windows {
		rect := frames[w]
		r.txn[w]++
		reqs = append(reqs, Request{Kind: RequestSetWindowFrame, Window: w, Rect: rect, Txn: r.txn[w]})
		if finishedSet[w] {
			reqs = append(reqs, Request{Kind: RequestEndWindowAnimation, Window: w, Txn: r.txn[w]})
		}
	}
	return reqs
}

// animationStepSeconds is the fixed per-tick advance AnimationTick events
// represent; the reactor has no notion of wall-clock time beyond what
// each event supplies, so callers emitting
// AnimationTick are expected to do so at a steady cadence matching this
// step (the orchestrator's timer source, not specified here, owns that).
const animationStepSeconds = 1.0 / 60.0

// recomputeAndEmit computes (space, screen)'s current frames, diffs them
// against the last frame sent per window, and returns one request for
// every window whose target changed: a SetWindowFrame with the new
// rectangle, or, when animation is enabled and both the prior and the new
// rectangle are on-screen, a BeginWindowAnimation alone, whose
// interpolated SetWindowFrames follow on later AnimationTicks.
func (r *Reactor) recomputeAndEmit(space SpaceId, screen ScreenSize, now float64) []Request {
	frames := r.manager.Layout(space, screen, now)
	cfg := r.manager.Config()
	var reqs []Request

	seen := make(map[WindowId]bool, len(frames))
	for _, f := range frames {
		seen[f.Window] = true
		prev, had := r.lastFrame[f.Window]
		if had && prev == f {
			continue
		}
		r.lastFrame[f.Window] = f

		if cfg.AnimationDurationMs > 0 && had && !prev.Rect.IsHidden() && !f.Rect.IsHidden() {
			r.txn[f.Window]++
			reqs = append(reqs, Request{Kind: RequestBeginWindowAnimation, Window: f.Window, Txn: r.txn[f.Window]})
			anim := NewWindowAnimation(f.Window, r.txn[f.Window], prev.Rect, f.Rect, float32(cfg.AnimationDurationMs)/1000, ease.Linear)
			r.anims.Begin(anim)
			continue
		}

		r.txn[f.Window]++
		reqs = append(reqs, Request{Kind: RequestSetWindowFrame, Window: f.Window, Rect: f.Rect, Txn: r.txn[f.Window]})
	}

	// Any window this layout no longer reports (removed or moved away)
	// has nothing further emitted for it; bookkeeping was already cleared
	// by WindowRemoved/MoveToSpace.
	return reqs
}

// MarkUntracked records a failed frame write for window: its last sent
// frame is forgotten, so the next recompute of its layout emits it
// again. Once the failure count reaches the
// configured threshold, the window is logged and removed from the layout
// outright rather than retried forever.
func (r *Reactor) MarkUntracked(window WindowId) int {
	r.untrackedFails[window]++
	delete(r.lastFrame, window) // force re-emission next recompute
	count := r.untrackedFails[window]

	threshold := r.manager.Config().UntrackedFailureThreshold
	if threshold > 0 && count >= threshold {
		r.log("warn", "window exceeded dispatch failure threshold, removing from layout", "window", window, "failures", count, "threshold", threshold)
		r.evictUntracked(window)
	}
	return count
}

// evictUntracked drops window from the model entirely, the same
// bookkeeping processEvent performs on an explicit window-removed event.
func (r *Reactor) evictUntracked(window WindowId) {
	r.manager.WindowRemoved(window)
	r.anims.Cancel(window)
	delete(r.lastFrame, window)
	delete(r.txn, window)
	delete(r.untrackedFails, window)
}

// ClearUntracked resets the failure count after a successful write.
func (r *Reactor) ClearUntracked(window WindowId) {
	delete(r.untrackedFails, window)
}
