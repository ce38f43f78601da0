package glide

// selectionObserver remembers, per container, which child was last
// selected, and lets a caller descend from the root to "the current leaf".
type selectionObserver struct {
	selected map[NodeId]NodeId
}

func (s *selectionObserver) init() {
	s.selected = make(map[NodeId]NodeId)
}

func (s *selectionObserver) onCreated(NodeId) {}
func (s *selectionObserver) onAddedToForest(NodeId) {}

// onAddedToParent makes child the selected one if parent had no selection
// yet.
func (s *selectionObserver) onAddedToParent(t *Tree, child, parent NodeId) {
	if _, ok := s.selected[parent]; !ok {
		s.selected[parent] = child
	}
}

// onRemovingFromParent moves parent's selection to an adjacent sibling if
// the departing child was selected, so the invariant "selection path ends
// at a valid child" survives the removal.
func (s *selectionObserver) onRemovingFromParent(t *Tree, child, parent NodeId) {
	if s.selected[parent] != child {
		return
	}
	r := t.rec(child)
	switch {
	case !r.next.IsNil():
		s.selected[parent] = r.next
	case !r.prev.IsNil():
		s.selected[parent] = r.prev
	default:
		delete(s.selected, parent)
	}
}

func (s *selectionObserver) onRemovedChild(t *Tree, parent NodeId) {}
func (s *selectionObserver) onRemovedFromForest(NodeId) {}
func (s *selectionObserver) onDestroyed(id NodeId) { delete(s.selected, id) }

// onPromoted keeps selection continuity across automatic compaction: if
// grandparent had container selected, child (container's sole remaining
// child, now promoted into container's place) becomes selected instead.
func (s *selectionObserver) onPromoted(container, child, grandparent NodeId) {
	if s.selected[grandparent] == container {
		s.selected[grandparent] = child
	}
}

// Selected returns container's selected child, or NilNode if it has none
// (an empty container, or one that has never had a child).
func (t *Tree) Selected(container NodeId) NodeId {
	return t.selection.selected[container]
}

// SetSelected overrides container's selected child. Panics if child is not
// currently a child of container.
func (t *Tree) SetSelected(container, child NodeId) {
	if t.ChildIndex(container, child) < 0 {
		invariantf("SetSelected: %v is not a child of %v", child, container)
	}
	t.selection.selected[container] = child
}

// CurrentLeaf descends the selection path from root to a leaf. Returns
// NilNode if any container along the way has no selection recorded (an
// empty subtree).
func (t *Tree) CurrentLeaf(root NodeId) NodeId {
	n := root
	for {
		r := t.rec(n)
		if r.Leaf {
			return n
		}
		sel, ok := t.selection.selected[n]
		if !ok || t.ChildIndex(n, sel) < 0 {
			return NilNode
		}
		n = sel
	}
}

// SelectionPath returns the full chain of NodeIds from root to the current
// leaf, inclusive, or nil if the selection path is broken or incomplete.
func (t *Tree) SelectionPath(root NodeId) []NodeId {
	path := []NodeId{root}
	n := root
	for {
		r := t.rec(n)
		if r.Leaf {
			return path
		}
		sel, ok := t.selection.selected[n]
		if !ok || t.ChildIndex(n, sel) < 0 {
			return nil
		}
		path = append(path, sel)
		n = sel
	}
}

// FocusDirection is the directional focus algorithm: it
// walks up the selection path from the current leaf until it finds a
// container whose principal axis matches dir and whose selected child has
// an adjacent sibling in that direction, moves selection to that sibling,
// then descends by selected-child back to a leaf. If no such ancestor
// exists, selection is unchanged and FocusNoMatch is returned.
func (t *Tree) FocusDirection(root NodeId, dir Direction) FocusResult {
	path := t.SelectionPath(root)
	if path == nil {
		return FocusNoMatch
	}
	wantAxis := directionAxis(dir)
	forward := directionIsForward(dir)

	// path[i] is a child of path[i-1]; walk from the leaf's parent upward.
	for i := len(path) - 2; i >= 0; i-- {
		container := path[i]
		selectedChild := path[i+1]
		if t.rec(container).Kind.PrincipalAxis() != wantAxis {
			continue
		}
		sibling := t.Sibling(selectedChild, forward)
		if sibling.IsNil() {
			continue
		}
		t.selection.selected[container] = sibling
		t.descendSelection(sibling)
		return FocusMoved
	}
	return FocusNoMatch
}

// descendSelection ensures every container from node down to a leaf has a
// recorded selection, defaulting to its first child where one is missing.
func (t *Tree) descendSelection(node NodeId) {
	for {
		r := t.rec(node)
		if r.Leaf {
			return
		}
		sel, ok := t.selection.selected[node]
		if !ok || t.ChildIndex(node, sel) < 0 {
			if r.firstChild.IsNil() {
				return
			}
			sel = r.firstChild
			t.selection.selected[node] = sel
		}
		node = sel
	}
}
