package glide

import "testing"

func w(pid int32, slot uint32) WindowId { return WindowId{Pid: pid, Slot: slot} }

func TestNewTreeHasEmptyRoot(t *testing.T) {
	tr := NewTree(Horizontal)
	if tr.ChildCount(tr.Root()) != 0 {
		t.Fatalf("expected empty root, got %d children", tr.ChildCount(tr.Root()))
	}
	if tr.KindOf(tr.Root()) != Horizontal {
		t.Errorf("expected root kind Horizontal, got %v", tr.KindOf(tr.Root()))
	}
}

func TestAttachBindsWindowAndSelection(t *testing.T) {
	tr := NewTree(Horizontal)
	leaf := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(leaf, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if got, ok := tr.NodeForWindow(w(1, 1)); !ok || got != leaf {
		t.Errorf("window not bound to leaf")
	}
	if tr.Selected(tr.Root()) != leaf {
		t.Errorf("expected first attached child to become selected")
	}
}

func TestAttachRejectsDuplicateWindow(t *testing.T) {
	tr := NewTree(Horizontal)
	leaf1 := tr.NewLeaf(w(1, 1))
	leaf2 := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(leaf1, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(leaf2, tr.Root(), 1); err != ErrWindowAlreadyBound {
		t.Fatalf("expected ErrWindowAlreadyBound, got %v", err)
	}
	// the rejected attach must not have mutated the tree
	if tr.ChildCount(tr.Root()) != 1 {
		t.Errorf("tree mutated despite failed attach: %d children", tr.ChildCount(tr.Root()))
	}
}

func TestRemoveLastChildCompactsContainer(t *testing.T) {
	tr := NewTree(Horizontal)
	container := tr.NewContainer(Vertical)
	if err := tr.Attach(container, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	leaf := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(leaf, container, 0); err != nil {
		t.Fatal(err)
	}

	tr.Remove(leaf)

	if tr.ChildCount(tr.Root()) != 0 {
		t.Fatalf("expected container to be compacted away, root has %d children", tr.ChildCount(tr.Root()))
	}
	if tr.Valid(container) {
		t.Errorf("expected emptied container to be freed")
	}
}

func TestSoleChildPromotionPreservesOwnWeight(t *testing.T) {
	tr := NewTree(Horizontal)
	container := tr.NewContainer(Vertical)
	if err := tr.Attach(container, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	sibling := tr.NewLeaf(w(9, 9))
	if err := tr.Attach(sibling, tr.Root(), 1); err != nil {
		t.Fatal(err)
	}

	child1 := tr.NewLeaf(w(1, 1))
	child2 := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(child1, container, 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(child2, container, 1); err != nil {
		t.Fatal(err)
	}
	tr.SetWeight(child1, 7.0)
	tr.SetWeight(child2, 3.0)

	tr.Remove(child1)

	if tr.Valid(container) {
		t.Fatalf("expected container with one remaining child to be promoted away")
	}
	if tr.Parent(child2) != tr.Root() {
		t.Fatalf("expected child2 promoted directly under root")
	}
	if got := tr.Size(child2); got != 3.0 {
		t.Errorf("expected promoted child to keep its own weight 3.0, got %v", got)
	}
}

func TestDetachReattachRoundTrip(t *testing.T) {
	tr := NewTree(Horizontal)
	a := tr.NewLeaf(w(1, 1))
	b := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(a, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(b, tr.Root(), 1); err != nil {
		t.Fatal(err)
	}

	d := tr.Detach(a)
	if tr.LeakedDetached() != 1 {
		t.Fatalf("expected 1 leaked detached subtree, got %d", tr.LeakedDetached())
	}
	if err := d.Reattach(tr.Root(), 1); err != nil {
		t.Fatal(err)
	}
	if tr.LeakedDetached() != 0 {
		t.Errorf("expected leaked count to drop to 0 after reattach")
	}
	if tr.ChildIndex(tr.Root(), a) != 1 {
		t.Errorf("expected a reattached at index 1")
	}
}

func TestCloseDetectsLeakedDetached(t *testing.T) {
	tr := NewTree(Horizontal)
	a := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(a, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	tr.Detach(a)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Close to panic on leaked detached subtree")
		}
	}()
	tr.Close()
}

func TestFocusDirectionMovesAlongMatchingAxis(t *testing.T) {
	tr := NewTree(Horizontal)
	a := tr.NewLeaf(w(1, 1))
	b := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(a, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(b, tr.Root(), 1); err != nil {
		t.Fatal(err)
	}
	tr.SetSelected(tr.Root(), a)

	if got := tr.FocusDirection(tr.Root(), DirRight); got != FocusMoved {
		t.Fatalf("expected FocusMoved, got %v", got)
	}
	if tr.CurrentLeaf(tr.Root()) != b {
		t.Errorf("expected selection to move to b")
	}
	if got := tr.FocusDirection(tr.Root(), DirRight); got != FocusNoMatch {
		t.Errorf("expected FocusNoMatch at the rightmost leaf, got %v", got)
	}
}
