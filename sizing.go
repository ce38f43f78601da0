package glide

const defaultWeight = 1.0

// sizingObserver tracks a per-node weight and a per-container total
// weight. It is one of Tree's three fixed observers, invoked directly by
// Tree's mutation methods rather than through an interface.
type sizingObserver struct {
	size map[NodeId]float64
	total map[NodeId]float64
}

func (s *sizingObserver) init() {
	s.size = make(map[NodeId]float64)
	s.total = make(map[NodeId]float64)
}

// onCreated gives every new node (leaf or container) a default weight of 1
// and, for containers, a total of 0 (no children yet).
func (s *sizingObserver) onCreated(id NodeId) {
	s.size[id] = defaultWeight
	s.total[id] = 0
}

func (s *sizingObserver) onAddedToForest(NodeId) {}

// onAddedToParent assigns child's weight to an equal share of parent's
// current total (or 1.0 if parent had no children yet), then adds that
// share into parent's total, keeping total == Σ children.size.
func (s *sizingObserver) onAddedToParent(t *Tree, child, parent NodeId) {
	childCountBefore := t.rec(parent).childCount - 1
	var weight float64
	if childCountBefore > 0 {
		weight = s.total[parent] / float64(childCountBefore)
	} else {
		weight = defaultWeight
	}
	s.size[child] = weight
	s.total[parent] += weight
}

func (s *sizingObserver) onRemovingFromParent(t *Tree, child, parent NodeId) {
	s.total[parent] -= s.size[child]
	if s.total[parent] < 0 && s.total[parent] > -1e-9 {
		s.total[parent] = 0
	}
}

func (s *sizingObserver) onRemovedChild(t *Tree, parent NodeId) {}

func (s *sizingObserver) onRemovedFromForest(NodeId) {}

func (s *sizingObserver) onDestroyed(id NodeId) {
	delete(s.size, id)
	delete(s.total, id)
}

// onPromoted adjusts grandparent's total by the difference between the
// destroyed container's weight and the promoted child's own weight,
// leaving the child's weight unchanged.
func (s *sizingObserver) onPromoted(t *Tree, container, child, grandparent NodeId) {
	s.total[grandparent] += s.size[child] - s.size[container]
}

// Size returns node's current weight.
func (t *Tree) Size(node NodeId) float64 { return t.sizing.size[node] }

// Total returns a container's total weight (the sum of its children's
// weights).
func (t *Tree) Total(container NodeId) float64 { return t.sizing.total[container] }

// SetWeight changes node's weight and atomically updates its parent's
// total to match. No-op on the root, which has no parent.
func (t *Tree) SetWeight(node NodeId, weight float64) {
	if weight < 0 {
		weight = 0
	}
	parent := t.rec(node).parent
	if parent.IsNil() {
		t.sizing.size[node] = weight
		return
	}
	delta := weight - t.sizing.size[node]
	t.sizing.size[node] = weight
	t.sizing.total[parent] += delta
}

// Balance resets every child of container to an equal share of its total,
// undoing any drift introduced by interactive resizes. Rebalancing is
// never automatic; callers invoke this explicitly.
func (t *Tree) Balance(container NodeId) {
	r := t.rec(container)
	if r.childCount == 0 {
		return
	}
	share := t.sizing.total[container] / float64(r.childCount)
	for c := r.firstChild; !c.IsNil(); c = t.rec(c).next {
		t.sizing.size[c] = share
	}
}
