package glide

import "testing"

func TestNewLeafGetsDefaultWeight(t *testing.T) {
	tr := NewTree(Horizontal)
	leaf := tr.NewLeaf(w(1, 1))
	if got := tr.Size(leaf); got != defaultWeight {
		t.Errorf("Size(new leaf) = %v, want %v", got, defaultWeight)
	}
}

func TestAttachSharesEqualWeightAmongExistingSiblings(t *testing.T) {
	tr := NewTree(Horizontal)
	root := tr.Root()
	a := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(a, root, 0); err != nil {
		t.Fatal(err)
	}
	tr.SetWeight(a, 6.0)

	b := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(b, root, 1); err != nil {
		t.Fatal(err)
	}

	if got := tr.Size(b); got != 6.0 {
		t.Errorf("Size(new sibling) = %v, want 6 (equal share of existing total)", got)
	}
	if got := tr.Total(root); got != 12.0 {
		t.Errorf("Total(root) = %v, want 12", got)
	}
}

func TestSetWeightUpdatesParentTotal(t *testing.T) {
	tr := NewTree(Horizontal)
	root := tr.Root()
	a := tr.NewLeaf(w(1, 1))
	b := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(a, root, 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(b, root, 1); err != nil {
		t.Fatal(err)
	}

	tr.SetWeight(a, 3.0)
	if got := tr.Total(root); got != 4.0 {
		t.Errorf("Total(root) = %v, want 4 (3 + 1)", got)
	}
}

func TestSetWeightClampsNegativeToZero(t *testing.T) {
	tr := NewTree(Horizontal)
	root := tr.Root()
	a := tr.NewLeaf(w(1, 1))
	if err := tr.Attach(a, root, 0); err != nil {
		t.Fatal(err)
	}

	tr.SetWeight(a, -5.0)
	if got := tr.Size(a); got != 0 {
		t.Errorf("Size(a) = %v, want 0 after negative SetWeight", got)
	}
}

func TestBalanceDistributesTotalEvenlyAmongChildren(t *testing.T) {
	tr := NewTree(Horizontal)
	root := tr.Root()
	a := tr.NewLeaf(w(1, 1))
	b := tr.NewLeaf(w(2, 2))
	c := tr.NewLeaf(w(3, 3))
	for i, n := range []NodeId{a, b, c} {
		if err := tr.Attach(n, root, i); err != nil {
			t.Fatal(err)
		}
	}
	tr.SetWeight(a, 10.0)
	tr.SetWeight(b, 1.0)
	tr.SetWeight(c, 1.0)
	total := tr.Total(root)

	tr.Balance(root)

	want := total / 3
	for _, n := range []NodeId{a, b, c} {
		if got := tr.Size(n); abs(got-want) > 1e-9 {
			t.Errorf("Size(%v) = %v, want %v after Balance", n, got, want)
		}
	}
}

func TestPromotedChildKeepsOwnWeightNotContainersWeight(t *testing.T) {
	tr := NewTree(Horizontal)
	root := tr.Root()
	outer := tr.NewContainer(Vertical)
	if err := tr.Attach(outer, root, 0); err != nil {
		t.Fatal(err)
	}
	tr.SetWeight(outer, 9.0)

	a := tr.NewLeaf(w(1, 1))
	b := tr.NewLeaf(w(2, 2))
	if err := tr.Attach(a, outer, 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.Attach(b, outer, 1); err != nil {
		t.Fatal(err)
	}
	tr.SetWeight(a, 2.5)

	tr.Remove(b)

	if got := tr.Size(a); got != 2.5 {
		t.Errorf("Size(a) after promotion = %v, want 2.5 (its own weight, not the container's 9)", got)
	}
	if tr.Parent(a).IsNil() {
		t.Fatal("expected a to still have a parent after promotion")
	}
}
