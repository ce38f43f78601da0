package glide

// windowObserver maintains the WindowId ↔ leaf NodeId bijection.
type windowObserver struct {
	toNode map[WindowId]NodeId
	toWindow map[NodeId]WindowId
}

func (w *windowObserver) init() {
	w.toNode = make(map[WindowId]NodeId)
	w.toWindow = make(map[NodeId]WindowId)
}

// checkBindable reports ErrWindowAlreadyBound if attaching subtreeRoot
// would bind a window that is already bound to a different live node.
// Called by Tree.Attach before any mutation, so a rejected attach leaves
// the tree untouched.
func (w *windowObserver) checkBindable(t *Tree, subtreeRoot NodeId) error {
	var err error
	t.forEachInSubtree(subtreeRoot, func(n NodeId) {
		if err != nil {
			return
		}
		r := t.rec(n)
		if !r.Leaf {
			return
		}
		if existing, ok := w.toNode[r.Window]; ok && existing != n {
			err = ErrWindowAlreadyBound
		}
	})
	return err
}

// onAddedToForest binds a leaf's window as it enters the tree.
func (w *windowObserver) onAddedToForest(t *Tree, n NodeId) {
	r := t.rec(n)
	if !r.Leaf {
		return
	}
	w.toNode[r.Window] = n
	w.toWindow[n] = r.Window
}

// onRemovedFromForest unbinds a leaf's window as it leaves the tree.
func (w *windowObserver) onRemovedFromForest(t *Tree, n NodeId) {
	r := t.rec(n)
	if !r.Leaf {
		return
	}
	if w.toNode[r.Window] == n {
		delete(w.toNode, r.Window)
	}
	delete(w.toWindow, n)
}

// onPromoted is a no-op: automatic compaction never creates or destroys a
// leaf, so the window bijection is untouched by it.
func (w *windowObserver) onPromoted() {}

// NodeForWindow returns the leaf bound to window, and whether one exists.
func (t *Tree) NodeForWindow(window WindowId) (NodeId, bool) {
	n, ok := t.windows.toNode[window]
	return n, ok
}

// WindowForNode returns the window bound to a leaf node, and whether it is
// currently attached (a freshly-created, unattached leaf has no binding
// yet).
func (t *Tree) WindowForNode(n NodeId) (WindowId, bool) {
	w, ok := t.windows.toWindow[n]
	return w, ok
}
