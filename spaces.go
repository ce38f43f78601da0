package glide

// Layout bundles everything one (space, screen size) combination needs to
// compute window geometry: the tree plus its three
// observers (carried inside Tree itself), a floating-window set, optional
// scroll-viewport state, and the active layout mode.
type Layout struct {
	Tree *Tree
	Floating map[WindowId]Rect
	Scroll ViewportState
	Mode LayoutMode
	Fullscreen NodeId

	refs int
}

// LayoutMode selects which of the two layout algorithms Calculate uses
// for a Layout's top-level arrangement.
type LayoutMode int

const (
	ModeTree LayoutMode = iota
	ModeScroll
)

func (m LayoutMode) String() string {
	if m == ModeScroll {
		return "scroll"
	}
	return "tree"
}

// newLayout creates an empty layout with a horizontal root container.
func newLayout(debug bool) *Layout {
	t := NewTree(Horizontal)
	t.Debug = debug
	return &Layout{
		Tree: t,
		Floating: make(map[WindowId]Rect),
		Scroll: NewViewportState(),
		Fullscreen: NilNode,
		refs: 1,
	}
}

// clone deep-copies a layout so PrepareModify can hand back a private
// layout without disturbing screen sizes still sharing the original. The
// tree is copied node-for-node rather than merely pointer-shared, since
// Go has no Arc<T> to alias and later diverge.
func (l *Layout) clone() *Layout {
	nt := NewTree(l.Tree.KindOf(l.Tree.Root()))
	nt.Debug = l.Tree.Debug
	copyChildren(l.Tree, l.Tree.Root(), nt, nt.Root())
	copySelection(l.Tree, nt, l.Tree.Root(), nt.Root())

	floating := make(map[WindowId]Rect, len(l.Floating))
	for w, r := range l.Floating {
		floating[w] = r
	}
	return &Layout{
		Tree: nt,
		Floating: floating,
		Scroll: l.Scroll,
		Mode: l.Mode,
		Fullscreen: NilNode, // re-resolved by SpaceLayouts.PrepareModify when the fullscreen node is a leaf
		refs: 1,
	}
}

// copyChildren recursively rebuilds src's subtree rooted at srcNode under
// dst, attaching into dstParent, carrying over each node's kind/window and
// weight.
func copyChildren(src *Tree, srcNode NodeId, dst *Tree, dstNode NodeId) {
	children := src.Children(srcNode)
	for _, c := range children {
		var nc NodeId
		if src.IsLeaf(c) {
			nc = dst.NewLeaf(src.WindowOf(c))
		} else {
			nc = dst.NewContainer(src.KindOf(c))
		}
		if err := dst.Attach(nc, dstNode, dst.ChildCount(dstNode)); err != nil {
			invariantf("clone: unexpected attach failure: %v", err)
		}
		dst.SetWeight(nc, src.Size(c))
		if !src.IsLeaf(c) {
			copyChildren(src, c, dst, nc)
		}
	}
}

// copySelection mirrors src's per-container selection onto dst, assuming
// both trees have structurally identical child order (true immediately
// after copyChildren).
func copySelection(src *Tree, dst *Tree, srcNode, dstNode NodeId) {
	if src.IsLeaf(srcNode) {
		return
	}
	sel := src.Selected(srcNode)
	if !sel.IsNil() {
		idx := src.ChildIndex(srcNode, sel)
		if idx >= 0 && idx < dst.ChildCount(dstNode) {
			dst.SetSelected(dstNode, dst.ChildAt(dstNode, idx))
		}
	}
	srcChildren := src.Children(srcNode)
	dstChildren := dst.Children(dstNode)
	for i, sc := range srcChildren {
		if !src.IsLeaf(sc) {
			copySelection(src, dst, sc, dstChildren[i])
		}
	}
}

// spaceEntry is one space's screen-size → layout mapping. Two screen
// sizes mapping to the same *Layout pointer are sharing by reference;
// PrepareModify breaks that sharing only for the size being modified.
type spaceEntry struct {
	bySize map[ScreenSize]*Layout
}

// SpaceLayouts is the top-level `SpaceId → (screen size → layout)`
// mapping, with copy-on-write sharing and reference-counted garbage
// collection.
type SpaceLayouts struct {
	spaces map[SpaceId]*spaceEntry
	debug bool
}

// NewSpaceLayouts creates an empty mapping.
func NewSpaceLayouts() *SpaceLayouts {
	return &SpaceLayouts{spaces: make(map[SpaceId]*spaceEntry)}
}

// SetDebug toggles Tree.Debug on every layout already created, and on
// every layout created from this point on.
func (sl *SpaceLayouts) SetDebug(enabled bool) {
	sl.debug = enabled
	for _, entry := range sl.spaces {
		seen := make(map[*Layout]bool, len(entry.bySize))
		for _, l := range entry.bySize {
			if seen[l] {
				continue
			}
			seen[l] = true
			l.Tree.Debug = enabled
		}
	}
}

// Get returns the layout for (space, screen). On the first access for
// that screen size it shares the layout of a screen size already recorded
// for the space, or creates a fresh empty one if there is none. When the
// space already holds several distinct layouts, which of them is shared
// is not defined, and it may be one that has already diverged.
func (sl *SpaceLayouts) Get(space SpaceId, screen ScreenSize) *Layout {
	entry, ok := sl.spaces[space]
	if !ok {
		entry = &spaceEntry{bySize: make(map[ScreenSize]*Layout)}
		sl.spaces[space] = entry
	}
	if l, ok := entry.bySize[screen]; ok {
		return l
	}

	// Share with any existing size's layout for this space; first ever
	// access for this space creates a brand new empty layout instead.
	var shared *Layout
	for _, l := range entry.bySize {
		shared = l
		break
	}
	if shared == nil {
		shared = newLayout(sl.debug)
	} else {
		shared.refs++
	}
	entry.bySize[screen] = shared
	return shared
}

// PrepareModify must be called before any structural mutation to the
// layout for (space, screen). If that layout is currently shared with
// another screen size (refs > 1), it is cloned and the clone replaces
// this screen size's entry; the original, still shared, is untouched.
// Returns the now-exclusively-owned layout to mutate.
func (sl *SpaceLayouts) PrepareModify(space SpaceId, screen ScreenSize) *Layout {
	l := sl.Get(space, screen)
	if l.refs <= 1 {
		return l
	}
	l.refs--
	fresh := l.clone()
	if !l.Fullscreen.IsNil() && l.Tree.Valid(l.Fullscreen) && l.Tree.IsLeaf(l.Fullscreen) {
		if n, ok := fresh.Tree.NodeForWindow(l.Tree.WindowOf(l.Fullscreen)); ok {
			fresh.Fullscreen = n
		}
	}
	sl.spaces[space].bySize[screen] = fresh
	return fresh
}

// Release drops (space, screen)'s reference to its layout. When the
// layout's reference count reaches zero, the entry is dropped and the
// layout's tree is closed.
func (sl *SpaceLayouts) Release(space SpaceId, screen ScreenSize) {
	entry, ok := sl.spaces[space]
	if !ok {
		return
	}
	l, ok := entry.bySize[screen]
	if !ok {
		return
	}
	delete(entry.bySize, screen)
	l.refs--
	if l.refs <= 0 {
		l.Tree.Close()
	}
	if len(entry.bySize) == 0 {
		delete(sl.spaces, space)
	}
}

// Spaces returns every SpaceId with at least one recorded layout, for
// iteration by the reactor (e.g. on ScreenParametersChanged).
func (sl *SpaceLayouts) Spaces() []SpaceId {
	out := make([]SpaceId, 0, len(sl.spaces))
	for s := range sl.spaces {
		out = append(out, s)
	}
	return out
}
