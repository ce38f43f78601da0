package glide

import "testing"

func TestWindowForNodeUnboundBeforeAttach(t *testing.T) {
	tr := NewTree(Horizontal)
	leaf := tr.NewLeaf(w(1, 1))
	if _, ok := tr.WindowForNode(leaf); ok {
		t.Errorf("expected a freshly-created leaf to have no binding before attach")
	}
	if err := tr.Attach(leaf, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if got, ok := tr.WindowForNode(leaf); !ok || got != w(1, 1) {
		t.Errorf("expected leaf bound to its window after attach, got %v, %v", got, ok)
	}
}

func TestNodeForWindowUnboundAfterDetach(t *testing.T) {
	tr := NewTree(Horizontal)
	leaf := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(leaf, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	d := tr.Detach(leaf)
	if _, ok := tr.NodeForWindow(w(1, 1)); ok {
		t.Errorf("expected window unbound while its leaf is detached")
	}
	if err := d.Reattach(tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	if got, ok := tr.NodeForWindow(w(1, 1)); !ok || got != leaf {
		t.Errorf("expected window rebound after reattach, got %v, %v", got, ok)
	}
}

func TestAttachAcrossContainersRejectsDuplicateDeep(t *testing.T) {
	tr := NewTree(Horizontal)
	container := tr.NewContainer(Vertical)
	if err := tr.Attach(container, tr.Root(), 0); err != nil {
		t.Fatal(err)
	}
	inner := tr.NewLeaf(w(5, 5))
	if err := tr.Attach(inner, container, 0); err != nil {
		t.Fatal(err)
	}

	dup := tr.NewLeaf(w(5, 5))
	other := tr.NewContainer(Horizontal)
	if err := tr.Attach(dup, other, 0); err != ErrWindowAlreadyBound {
		t.Fatalf("expected ErrWindowAlreadyBound attaching a subtree with a duplicate window, got %v", err)
	}
	if tr.ChildCount(other) != 0 {
		t.Errorf("expected rejected attach to leave the detached subtree's parent untouched")
	}
}
