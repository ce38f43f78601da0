package glide

import "sort"

// Manager sits above the layout model and below the reactor: it
// translates high-level commands into tree operations and produces
// per-window target rectangles. It owns no I/O and no notion of time
// beyond what each call receives explicitly.
type Manager struct {
	layouts *SpaceLayouts
	config Config

	windowSpace map[WindowId]SpaceId
	untracked map[WindowId]bool

	// parentExtentHint is set transiently by ResizeWithExtent so Resize
	// can convert a pixel delta into a weight delta without every caller
	// having to thread the resizing container's on-screen extent through
	// every call; 0 falls back to a 1000px guess.
	parentExtentHint float64
}

// NewManager creates a Manager with the given starting configuration.
func NewManager(cfg Config) *Manager {
	return &Manager{
		layouts: NewSpaceLayouts(),
		config: cfg,
		windowSpace: make(map[WindowId]SpaceId),
		untracked: make(map[WindowId]bool),
	}
}

// SetConfig swaps the active configuration, validated against no
// particular screen (callers revalidate per-screen in Layout).
func (m *Manager) SetConfig(cfg Config) { m.config = cfg }

// SetDebug toggles the debug-only invariant checks (tree depth, child
// count) on every layout tree this manager owns, present and future.
func (m *Manager) SetDebug(enabled bool) { m.layouts.SetDebug(enabled) }

// SpaceOf reports which space currently owns window, if any.
func (m *Manager) SpaceOf(window WindowId) (SpaceId, bool) {
	s, ok := m.windowSpace[window]
	return s, ok
}

// Config returns the manager's current configuration.
func (m *Manager) Config() Config { return m.config }

// --- Window lifecycle ---

// WindowAdded inserts window into space's tree (current screen), as a new
// leaf attached under the currently selected container so it lands next
// to the window the user was last looking at.
func (m *Manager) WindowAdded(window WindowId, space SpaceId, screen ScreenSize) {
	l := m.layouts.PrepareModify(space, screen)
	m.windowSpace[window] = space

	leaf := l.Tree.NewLeaf(window)
	root := l.Tree.Root()
	target := l.Tree.CurrentLeaf(root)
	if target.IsNil() || target == root {
		if err := l.Tree.Attach(leaf, root, l.Tree.ChildCount(root)); err != nil {
			invariantf("WindowAdded: %v", err)
		}
		l.Tree.SetSelected(root, leaf)
		return
	}

	parent := l.Tree.Parent(target)
	idx := l.Tree.ChildIndex(parent, target) + 1
	if err := l.Tree.Attach(leaf, parent, idx); err != nil {
		invariantf("WindowAdded: %v", err)
	}
	l.Tree.SetSelected(parent, leaf)
}

// WindowRemoved removes window from whichever space/tree or floating set
// holds it. A no-op if the window is unknown.
func (m *Manager) WindowRemoved(window WindowId) {
	space, ok := m.windowSpace[window]
	if !ok {
		return
	}
	delete(m.windowSpace, window)
	delete(m.untracked, window)
	for screen := range m.layoutsForSpace(space) {
		l := m.layouts.PrepareModify(space, screen)
		if n, ok := l.Tree.NodeForWindow(window); ok {
			l.Tree.Remove(n)
		}
		delete(l.Floating, window)
		if l.Fullscreen != NilNode {
			if fw, ok := l.Tree.WindowForNode(l.Fullscreen); !ok || fw == window {
				l.Fullscreen = NilNode
			}
		}
	}
}

// WindowMovedToSpace reassigns window's space membership bookkeeping. The
// caller is responsible for having already removed/re-added the node via
// MoveToSpace if a structural move is wanted; this just updates the index
// used by WindowRemoved and focus-by-window lookups.
func (m *Manager) WindowMovedToSpace(window WindowId, space SpaceId) {
	m.windowSpace[window] = space
}

// layoutsForSpace returns every ScreenSize currently recorded for space.
func (m *Manager) layoutsForSpace(space SpaceId) map[ScreenSize]struct{} {
	out := make(map[ScreenSize]struct{})
	if entry, ok := m.layouts.spaces[space]; ok {
		for size := range entry.bySize {
			out[size] = struct{}{}
		}
	}
	return out
}

// --- Focus ---

// Focus moves the tiled selection in direction within (space, screen).
func (m *Manager) Focus(space SpaceId, screen ScreenSize, dir Direction) FocusResult {
	l := m.layouts.Get(space, screen)
	return l.Tree.FocusDirection(l.Tree.Root(), dir)
}

// FocusWindow selects window's leaf directly, updating every ancestor
// container's selection along the path to it. Returns FocusNoMatch if
// window is unknown or floating.
func (m *Manager) FocusWindow(space SpaceId, screen ScreenSize, window WindowId) FocusResult {
	l := m.layouts.Get(space, screen)
	n, ok := l.Tree.NodeForWindow(window)
	if !ok {
		return FocusNoMatch
	}
	for {
		parent := l.Tree.Parent(n)
		if parent.IsNil() {
			break
		}
		l.Tree.SetSelected(parent, n)
		n = parent
	}
	return FocusMoved
}

// FocusFloatingNext/Prev cycle the focused window within a space's
// floating set. Since the floating set carries no ordering, callers
// supply the currently-focused floating window and get back whichever
// neighbor a stable iteration order produces; with zero or one floating
// windows the call is a no-op.
func (m *Manager) FocusFloatingNext(space SpaceId, screen ScreenSize, current WindowId) (WindowId, bool) {
	return m.cycleFloating(space, screen, current, 1)
}

func (m *Manager) FocusFloatingPrev(space SpaceId, screen ScreenSize, current WindowId) (WindowId, bool) {
	return m.cycleFloating(space, screen, current, -1)
}

func (m *Manager) cycleFloating(space SpaceId, screen ScreenSize, current WindowId, step int) (WindowId, bool) {
	l := m.layouts.Get(space, screen)
	if len(l.Floating) == 0 {
		return WindowId{}, false
	}
	ordered := make([]WindowId, 0, len(l.Floating))
	for w := range l.Floating {
		ordered = append(ordered, w)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		return a.Pid < b.Pid || (a.Pid == b.Pid && a.Slot < b.Slot)
	})
	idx := -1
	for i, w := range ordered {
		if w == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ordered[0], true
	}
	next := (idx + step + len(ordered)) % len(ordered)
	return ordered[next], true
}

// --- Structure ---

// Split wraps the currently selected leaf of (space, screen) in a new
// container along axis, ready to receive a sibling (e.g. the next
// WindowAdded call lands beside it).
func (m *Manager) Split(space SpaceId, screen ScreenSize, axis Axis) {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() || sel == t.Root() {
		return
	}
	kind := Horizontal
	if axis == AxisVertical {
		kind = Vertical
	}
	parent := t.Parent(sel)
	if !t.IsLeaf(parent) && t.ChildCount(parent) == 1 {
		t.SetKind(parent, kind)
		return
	}
	idx := t.ChildIndex(parent, sel)
	weight := t.Size(sel)
	d := t.Detach(sel)
	wrapper := t.NewContainer(kind)
	if err := t.Attach(wrapper, parent, idx); err != nil {
		invariantf("Split: %v", err)
	}
	if err := d.Reattach(wrapper, 0); err != nil {
		invariantf("Split: %v", err)
	}
	t.SetWeight(sel, weight)
	t.SetSelected(parent, wrapper)
	t.SetSelected(wrapper, sel)
}

// Group rewraps the currently selected leaf's parent as Tabbed or Stacked
// in place, multiplexing its existing siblings.
func (m *Manager) Group(space SpaceId, screen ScreenSize, kind Kind) {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() {
		return
	}
	parent := t.Parent(sel)
	if parent.IsNil() {
		return
	}
	t.SetKind(parent, kind)
}

// Ungroup reverts the selected leaf's parent container to Horizontal,
// undoing Group. After a Split it restores the on-screen arrangement, but
// the wrapper container Split created stays in the tree.
func (m *Manager) Ungroup(space SpaceId, screen ScreenSize) {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() {
		return
	}
	parent := t.Parent(sel)
	if parent.IsNil() {
		return
	}
	t.SetKind(parent, Horizontal)
}

// Swap exchanges the selected leaf with its adjacent sibling in direction
// dir, within the nearest ancestor whose principal axis matches.
func (m *Manager) Swap(space SpaceId, screen ScreenSize, dir Direction) FocusResult {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	path := t.SelectionPath(t.Root())
	if path == nil {
		return FocusNoMatch
	}
	wantAxis := directionAxis(dir)
	forward := directionIsForward(dir)
	for i := len(path) - 2; i >= 0; i-- {
		container := path[i]
		child := path[i+1]
		if t.KindOf(container).PrincipalAxis() != wantAxis {
			continue
		}
		sibling := t.Sibling(child, forward)
		if sibling.IsNil() {
			continue
		}
		ci, si := t.ChildIndex(container, child), t.ChildIndex(container, sibling)
		cw, sw := t.Size(child), t.Size(sibling)
		dc := t.Detach(child)
		ds := t.Detach(sibling)
		if ci < si {
			mustReattach(ds, container, ci)
			mustReattach(dc, container, si)
		} else {
			mustReattach(dc, container, si)
			mustReattach(ds, container, ci)
		}
		t.SetWeight(child, cw)
		t.SetWeight(sibling, sw)
		return FocusMoved
	}
	return FocusNoMatch
}

func mustReattach(d DetachedNode, parent NodeId, index int) {
	if err := d.Reattach(parent, index); err != nil {
		invariantf("reattach during swap/move: %v", err)
	}
}

// Move relocates the selected leaf one position over in direction dir,
// within the nearest ancestor whose principal axis matches — as opposed
// to Swap, which exchanges two leaves' positions, Move removes the leaf
// and reinserts it past its neighbor.
func (m *Manager) Move(space SpaceId, screen ScreenSize, dir Direction) FocusResult {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	path := t.SelectionPath(t.Root())
	if path == nil {
		return FocusNoMatch
	}
	wantAxis := directionAxis(dir)
	forward := directionIsForward(dir)
	for i := len(path) - 2; i >= 0; i-- {
		container := path[i]
		child := path[i+1]
		if t.KindOf(container).PrincipalAxis() != wantAxis {
			continue
		}
		sibling := t.Sibling(child, forward)
		if sibling.IsNil() {
			continue
		}
		weight := t.Size(child)
		newIdx := t.ChildIndex(container, sibling)
		if forward {
			newIdx++
		}
		d := t.Detach(child)
		mustReattach(d, container, newIdx)
		t.SetWeight(child, weight)
		t.SetSelected(container, child)
		return FocusMoved
	}
	return FocusNoMatch
}

// MoveToSpace detaches window's leaf from its current space's tree and
// attaches it as a new leaf under targetSpace's root on the given screen,
// preserving no structural position (the destination space picks it up
// the same way WindowAdded would).
func (m *Manager) MoveToSpace(window WindowId, targetSpace SpaceId, targetScreen ScreenSize) {
	space, ok := m.windowSpace[window]
	if !ok {
		return
	}
	for screen := range m.layoutsForSpace(space) {
		l := m.layouts.PrepareModify(space, screen)
		if n, ok := l.Tree.NodeForWindow(window); ok {
			l.Tree.Remove(n)
		}
		delete(l.Floating, window)
	}
	m.windowSpace[window] = targetSpace
	m.WindowAdded(window, targetSpace, targetScreen)
}

// Promote moves the selected leaf up to be a direct child of its
// grandparent container, collapsing one level of nesting above it.
func (m *Manager) Promote(space SpaceId, screen ScreenSize) FocusResult {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() {
		return FocusNoMatch
	}
	parent := t.Parent(sel)
	if parent.IsNil() {
		return FocusNoMatch
	}
	grandparent := t.Parent(parent)
	if grandparent.IsNil() {
		return FocusNoMatch
	}
	weight := t.Size(sel)
	idx := t.ChildIndex(grandparent, parent) + 1
	d := t.Detach(sel)
	mustReattach(d, grandparent, idx)
	t.SetWeight(sel, weight)
	t.SetSelected(grandparent, sel)
	return FocusMoved
}

// Demote moves the selected leaf down to become a child of its preceding
// sibling, nesting it one level deeper. No-op if there is no preceding
// sibling to nest under, or that sibling is itself a leaf.
func (m *Manager) Demote(space SpaceId, screen ScreenSize) FocusResult {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() {
		return FocusNoMatch
	}
	parent := t.Parent(sel)
	if parent.IsNil() {
		return FocusNoMatch
	}
	prev := t.Sibling(sel, false)
	if prev.IsNil() || t.IsLeaf(prev) {
		return FocusNoMatch
	}
	weight := t.Size(sel)
	d := t.Detach(sel)
	mustReattach(d, prev, t.ChildCount(prev))
	t.SetWeight(sel, weight)
	t.SetSelected(prev, sel)
	return FocusMoved
}

// ToggleFloating moves window between the tree and the floating set of
// its current space. A window leaving the floating set is re-tiled as a
// new last child of the root and selected there; its previous position
// in the tree and its previous weight are not restored.
func (m *Manager) ToggleFloating(window WindowId, screen ScreenSize) {
	space, ok := m.windowSpace[window]
	if !ok {
		return
	}
	l := m.layouts.PrepareModify(space, screen)
	if n, ok := l.Tree.NodeForWindow(window); ok {
		l.Tree.Remove(n)
		l.Floating[window] = Rect{W: m.config.MinWindowW, H: m.config.MinWindowH}
		return
	}
	if _, ok := l.Floating[window]; ok {
		delete(l.Floating, window)
		leaf := l.Tree.NewLeaf(window)
		root := l.Tree.Root()
		if err := l.Tree.Attach(leaf, root, l.Tree.ChildCount(root)); err != nil {
			invariantf("ToggleFloating: %v", err)
		}
		l.Tree.SetSelected(root, leaf)
	}
}

// ToggleFullscreen marks the selected leaf of (space, screen) fullscreen,
// or clears fullscreen if it is already the fullscreen node.
func (m *Manager) ToggleFullscreen(space SpaceId, screen ScreenSize) {
	l := m.layouts.PrepareModify(space, screen)
	sel := l.Tree.CurrentLeaf(l.Tree.Root())
	if sel.IsNil() {
		return
	}
	if l.Fullscreen == sel {
		l.Fullscreen = NilNode
		return
	}
	l.Fullscreen = sel
}

// --- Sizing ---

// Resize converts a pixel delta on edge into a weight delta and applies
// it to the selected leaf and the sibling on the other side of edge,
// using the inverse of the calculator's distribution: dw = (dpx / parent.extent) * parent.total,
// clamped so neither sibling's resulting size falls below a floor.
func (m *Manager) Resize(space SpaceId, screen ScreenSize, edge Edge, deltaPx float64) {
	l := m.layouts.PrepareModify(space, screen)
	t := l.Tree
	sel := t.CurrentLeaf(t.Root())
	if sel.IsNil() {
		return
	}
	wantAxis := AxisHorizontal
	forward := edge == EdgeRight
	if edge == EdgeTop || edge == EdgeBottom {
		wantAxis = AxisVertical
		forward = edge == EdgeBottom
	}

	parent := t.Parent(sel)
	for !parent.IsNil() && t.KindOf(parent).PrincipalAxis() != wantAxis {
		sel = parent
		parent = t.Parent(sel)
	}
	if parent.IsNil() {
		return
	}
	sibling := t.Sibling(sel, forward)
	if sibling.IsNil() {
		return
	}

	parentExtent := m.parentExtentHint
	extent := parentExtent
	if extent <= 0 {
		extent = 1000 // no screen context supplied; caller should prefer ResizeWithExtent
	}
	total := t.Total(parent)
	dw := (deltaPx / extent) * total

	const floor = 0.05
	newSel := t.Size(sel) + dw
	newSib := t.Size(sibling) - dw
	minWeight := floor * total
	if newSib < minWeight {
		newSel -= minWeight - newSib
		newSib = minWeight
	}
	if newSel < minWeight {
		newSib -= minWeight - newSel
		newSel = minWeight
	}
	if newSel < minWeight || newSib < minWeight {
		return // the pair's combined weight cannot hold two floors
	}
	t.SetWeight(sel, newSel)
	t.SetWeight(sibling, newSib)
}

func (m *Manager) resizeWithExtent(space SpaceId, screen ScreenSize, edge Edge, deltaPx, parentExtent float64) {
	prev := m.parentExtentHint
	m.parentExtentHint = parentExtent
	m.Resize(space, screen, edge, deltaPx)
	m.parentExtentHint = prev
}

// ResizeWithExtent is Resize but takes the resizing container's current
// on-screen principal-axis extent directly, avoiding the 1000px fallback
// guess Resize uses when called without one.
func (m *Manager) ResizeWithExtent(space SpaceId, screen ScreenSize, edge Edge, deltaPx, parentExtent float64) {
	m.resizeWithExtent(space, screen, edge, deltaPx, parentExtent)
}

// Balance resets the selected leaf's parent container's children to equal
// shares.
func (m *Manager) Balance(space SpaceId, screen ScreenSize) {
	l := m.layouts.PrepareModify(space, screen)
	sel := l.Tree.CurrentLeaf(l.Tree.Root())
	if sel.IsNil() {
		return
	}
	parent := l.Tree.Parent(sel)
	if parent.IsNil() {
		return
	}
	l.Tree.Balance(parent)
}

// SetWeight adjusts the selected leaf's own weight by delta.
func (m *Manager) SetWeight(space SpaceId, screen ScreenSize, delta float64) {
	l := m.layouts.PrepareModify(space, screen)
	sel := l.Tree.CurrentLeaf(l.Tree.Root())
	if sel.IsNil() {
		return
	}
	l.Tree.SetWeight(sel, l.Tree.Size(sel)+delta)
}

// --- Scroll ---

// Scroll nudges (space, screen)'s viewport one column over in dir
// (left/right only meaningful; up/down are ignored, scroll mode is
// horizontal-only).
func (m *Manager) Scroll(space SpaceId, screen ScreenSize, dir Direction, now float64) {
	if dir != DirLeft && dir != DirRight {
		return
	}
	l := m.layouts.Get(space, screen)
	cfg := CalcConfigFrom(m.config)
	root := l.Tree.Root()
	sel := l.Tree.Selected(root)
	if sel.IsNil() {
		return
	}
	children := l.Tree.Children(root)
	idx := l.Tree.ChildIndex(root, sel)
	if dir == DirRight && idx+1 < len(children) {
		sel = children[idx+1]
	} else if dir == DirLeft && idx > 0 {
		sel = children[idx-1]
	}
	l.Tree.SetSelected(root, sel)
	start, _ := ColumnExtent(l.Tree, root, sel, cfg.InnerGap)
	l.Scroll.ScrollTo(start, now)
}

// SetCenteringMode changes (space, screen)'s viewport auto-recenter
// policy.
func (m *Manager) SetCenteringMode(space SpaceId, screen ScreenSize, mode CenteringMode) {
	l := m.layouts.Get(space, screen)
	l.Scroll.Centering = mode
}

// --- Interactive drag ---

// DragState tracks an in-progress interactive move/resize gesture.
type DragState struct {
	Window WindowId
	StartCursorX, StartCursorY float64
	StartRect Rect
	Resizing bool
	Edges EdgeSet
}

// InteractiveDragBegin starts tracking a drag of window from the given
// cursor position and starting rect. edges is non-empty for a resize
// drag (see DetectEdges), empty for a plain move.
func (m *Manager) InteractiveDragBegin(window WindowId, cursorX, cursorY float64, startRect Rect, edges EdgeSet) DragState {
	return DragState{
		Window: window, StartCursorX: cursorX, StartCursorY: cursorY,
		StartRect: startRect, Resizing: edges != 0, Edges: edges,
	}
}

// InteractiveDragUpdate computes the window's would-be rectangle given
// the cursor's new position, without mutating the model: a move drag
// translates StartRect by the cursor delta; a resize drag grows/shrinks
// from the dragged edges.
func (m *Manager) InteractiveDragUpdate(d DragState, cursorX, cursorY float64) Rect {
	dx := cursorX - d.StartCursorX
	dy := cursorY - d.StartCursorY
	r := d.StartRect
	if !d.Resizing {
		r.X += dx
		r.Y += dy
		return r
	}
	if d.Edges.Has(EdgeLeft) {
		r.X += dx
		r.W -= dx
	}
	if d.Edges.Has(EdgeRight) {
		r.W += dx
	}
	if d.Edges.Has(EdgeTop) {
		r.Y += dy
		r.H -= dy
	}
	if d.Edges.Has(EdgeBottom) {
		r.H += dy
	}
	if r.W < m.config.MinWindowW {
		r.W = m.config.MinWindowW
	}
	if r.H < m.config.MinWindowH {
		r.H = m.config.MinWindowH
	}
	return r
}

// InteractiveDragEnd is a no-op placeholder in the model: the reactor
// applies the final InteractiveDragUpdate rect as an ordinary
// SetWindowFrame and, for a tiled window, translates the pixel delta into
// a weight change via Resize/SetWeight itself. It exists so callers have
// an explicit symmetric bracket to the Begin call.
func (m *Manager) InteractiveDragEnd(DragState) {}

// DetectEdges reports which edges of a window at rect the cursor is close
// enough to (within threshold) to be considered dragging a resize handle.
// Degenerate geometry: if a dimension is below
// 2*threshold, that axis' two edges never both qualify — the side nearer
// the cursor wins.
func DetectEdges(rect Rect, cursorX, cursorY, threshold float64) EdgeSet {
	var set EdgeSet
	nearLeft := cursorX-rect.X <= threshold
	nearRight := rect.X+rect.W-cursorX <= threshold
	if rect.W < 2*threshold && (nearLeft || nearRight) {
		if cursorX-rect.X <= rect.X+rect.W-cursorX {
			set = set.with(EdgeLeft)
		} else {
			set = set.with(EdgeRight)
		}
	} else {
		if nearLeft {
			set = set.with(EdgeLeft)
		}
		if nearRight {
			set = set.with(EdgeRight)
		}
	}

	nearTop := cursorY-rect.Y <= threshold
	nearBottom := rect.Y+rect.H-cursorY <= threshold
	if rect.H < 2*threshold && (nearTop || nearBottom) {
		if cursorY-rect.Y <= rect.Y+rect.H-cursorY {
			set = set.with(EdgeTop)
		} else {
			set = set.with(EdgeBottom)
		}
	} else {
		if nearTop {
			set = set.with(EdgeTop)
		}
		if nearBottom {
			set = set.with(EdgeBottom)
		}
	}
	return set
}

// --- Computation ---

// Layout computes the current frame for every window tracked in (space,
// screen): tiled windows via Calculate (and, in scroll mode, the viewport
// shift), plus every floating window at its stored rectangle.
func (m *Manager) Layout(space SpaceId, screen ScreenSize, now float64) []Frame {
	l := m.layouts.Get(space, screen)
	c := m.config
	screenMin := float64(screen.W)
	if h := float64(screen.H); h < screenMin {
		screenMin = h
	}
	c.Validate(screenMin)
	cfg := CalcConfigFrom(c)
	screenRect := Rect{X: 0, Y: 0, W: float64(screen.W), H: float64(screen.H)}

	var frames []Frame
	switch l.Mode {
	case ModeScroll:
		bounds := ScrollModeBounds(l.Tree, l.Tree.Root(), cfg, screenRect)
		frames = Calculate(l.Tree, l.Tree.Root(), bounds, cfg, l.Fullscreen)
		ApplyViewportToFrames(frames, l.Scroll.Offset, screenRect)
	default:
		frames = Calculate(l.Tree, l.Tree.Root(), screenRect, cfg, l.Fullscreen)
	}

	floating := make([]WindowId, 0, len(l.Floating))
	for w := range l.Floating {
		floating = append(floating, w)
	}
	sort.Slice(floating, func(i, j int) bool {
		a, b := floating[i], floating[j]
		return a.Pid < b.Pid || (a.Pid == b.Pid && a.Slot < b.Slot)
	})
	for _, w := range floating {
		frames = append(frames, Frame{Window: w, Rect: l.Floating[w], Visible: true})
	}
	return frames
}
