package glide

// CalcConfig carries the layout calculator's tunables, all sourced from
// Config.
type CalcConfig struct {
	InnerGap float64
	OuterGap float64
	GroupBarThickness float64
	MinWindowW float64
	MinWindowH float64
}

// Frame is one emitted (window, rectangle, visibility) tuple.
type Frame struct {
	Window WindowId
	Rect Rect
	Visible bool
}

// Calculate walks tree under bounds and returns one Frame per window leaf
// reachable from root, in tree order. The sequence is a pure function of
// (tree structure, weights, selection, fullscreen node, bounds, cfg): equal
// inputs always produce a byte-identical sequence.
func Calculate(t *Tree, root NodeId, bounds Rect, cfg CalcConfig, fullscreen NodeId) []Frame {
	bounds = insetBy(bounds, cfg.OuterGap)
	c := &calculator{tree: t, cfg: cfg, fullscreen: fullscreen, rootRect: bounds}
	c.visit(root, bounds, !fullscreen.IsNil())
	return c.out
}

type calculator struct {
	tree *Tree
	cfg CalcConfig
	fullscreen NodeId
	rootRect Rect
	out []Frame
}

func insetBy(r Rect, gap float64) Rect {
	if gap <= 0 {
		return r
	}
	w := r.W - 2*gap
	h := r.H - 2*gap
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + gap, Y: r.Y + gap, W: w, H: h}
}

// visit emits frames for node and its subtree under rect.
// fullscreenElsewhereOrHere is true whenever the tree has a fullscreen
// node; with it set, everything visited here that isn't on the path to
// c.fullscreen is hidden.
func (c *calculator) visit(node NodeId, rect Rect, fullscreenElsewhereOrHere bool) {
	onFullscreenPath := node == c.fullscreen || c.isAncestorOfFullscreen(node)

	if fullscreenElsewhereOrHere && !onFullscreenPath {
		c.emitHidden(node, rect)
		return
	}

	if node == c.fullscreen {
		// A fullscreen node receives the outermost container rectangle,
		// not the rectangle its position in the tree would normally
		// allocate it.
		c.emitSubtree(node, c.rootRect, true)
		return
	}

	if c.tree.IsLeaf(node) {
		c.out = append(c.out, Frame{Window: c.tree.WindowOf(node), Rect: rect, Visible: true})
		return
	}

	kind := c.tree.KindOf(node)
	children := c.tree.Children(node)
	if len(children) == 0 {
		return
	}

	if kind.IsMultiplexed() {
		inner := insetBarThickness(rect, kind, c.cfg.GroupBarThickness)
		selected := c.tree.Selected(node)
		for _, child := range children {
			if child == selected {
				c.visit(child, inner, fullscreenElsewhereOrHere)
			} else {
				c.emitHidden(child, inner)
			}
		}
		return
	}

	weights := make([]float64, len(children))
	for i, ch := range children {
		weights[i] = c.tree.Size(ch)
	}
	axis := kind.PrincipalAxis()
	extent := axisExtent(rect, axis)
	sizes := distribute(extent, weights, len(children)-1, c.cfg.InnerGap)

	pos := axisOrigin(rect, axis)
	for i, ch := range children {
		childRect := placeAlongAxis(rect, axis, pos, sizes[i])
		c.visit(ch, childRect, fullscreenElsewhereOrHere)
		pos += sizes[i] + c.cfg.InnerGap
	}
}

// isAncestorOfFullscreen reports whether c.fullscreen is somewhere in
// node's subtree.
func (c *calculator) isAncestorOfFullscreen(node NodeId) bool {
	if c.fullscreen.IsNil() {
		return false
	}
	for n := c.fullscreen; !n.IsNil(); n = c.tree.Parent(n) {
		if n == node {
			return true
		}
	}
	return false
}

// emitSubtree renders node and its descendants normally (used for the
// fullscreen node itself, which ignores any elsewhere-fullscreen hiding).
func (c *calculator) emitSubtree(node NodeId, rect Rect, isFullscreenRoot bool) {
	if c.tree.IsLeaf(node) {
		c.out = append(c.out, Frame{Window: c.tree.WindowOf(node), Rect: rect, Visible: true})
		return
	}
	kind := c.tree.KindOf(node)
	children := c.tree.Children(node)
	if len(children) == 0 {
		return
	}
	if kind.IsMultiplexed() {
		inner := insetBarThickness(rect, kind, c.cfg.GroupBarThickness)
		selected := c.tree.Selected(node)
		for _, child := range children {
			if child == selected {
				c.emitSubtree(child, inner, false)
			} else {
				c.emitHidden(child, inner)
			}
		}
		return
	}
	weights := make([]float64, len(children))
	for i, ch := range children {
		weights[i] = c.tree.Size(ch)
	}
	axis := kind.PrincipalAxis()
	extent := axisExtent(rect, axis)
	sizes := distribute(extent, weights, len(children)-1, c.cfg.InnerGap)
	pos := axisOrigin(rect, axis)
	for i, ch := range children {
		childRect := placeAlongAxis(rect, axis, pos, sizes[i])
		c.emitSubtree(ch, childRect, false)
		pos += sizes[i] + c.cfg.InnerGap
	}
}

// emitHidden emits every leaf in node's subtree with an offscreen
// rectangle, preserving rect's size so the window actor has an explicit
// (if invisible) target.
func (c *calculator) emitHidden(node NodeId, rect Rect) {
	c.tree.forEachInSubtree(node, func(n NodeId) {
		if c.tree.IsLeaf(n) {
			c.out = append(c.out, Frame{Window: c.tree.WindowOf(n), Rect: Hidden(rect.W, rect.H), Visible: false})
		}
	})
}

func axisExtent(r Rect, axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.W
	}
	return r.H
}

func axisOrigin(r Rect, axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.X
	}
	return r.Y
}

func placeAlongAxis(r Rect, axis Axis, pos, extent float64) Rect {
	if axis == AxisHorizontal {
		return Rect{X: pos, Y: r.Y, W: extent, H: r.H}
	}
	return Rect{X: r.X, Y: pos, W: r.W, H: extent}
}

// insetBarThickness reserves a horizontal strip of the given thickness
// along the top of r for the tab/stack bar chrome, regardless of whether
// kind is Tabbed or Stacked — both render their bar along the top edge.
// kind is accepted for documentation symmetry with callers but does not
// change the side.
func insetBarThickness(r Rect, kind Kind, thickness float64) Rect {
	if thickness <= 0 {
		return r
	}
	return Rect{X: r.X, Y: r.Y + thickness, W: r.W, H: r.H - thickness}
}

// distribute implements rounded-and-carry distribution: extent (after
// subtracting nGaps*gap) is split among weights proportionally, accumulating
// the fractional remainder across iterations so the emitted integer pixel
// sizes sum exactly to the available extent.
func distribute(extent float64, weights []float64, nGaps int, gap float64) []float64 {
	available := extent - float64(nGaps)*gap
	if available < 0 {
		available = 0
	}
	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	out := make([]float64, len(weights))
	if totalWeight <= 0 {
		if len(weights) == 0 {
			return out
		}
		share := available / float64(len(weights))
		for i := range out {
			out[i] = roundPx(share)
		}
		fixRoundingCarry(out, available)
		return out
	}
	remainder := 0.0
	for i, w := range weights {
		ideal := available*w/totalWeight + remainder
		px := roundPx(ideal)
		remainder = ideal - px
		out[i] = px
	}
	fixRoundingCarry(out, available)
	return out
}

func roundPx(v float64) float64 {
	if v < 0 {
		return 0
	}
	// round-half-up to the nearest integer pixel
	return float64(int64(v + 0.5))
}

// fixRoundingCarry corrects any residual off-by-one-pixel error (which can
// arise when available itself isn't an integer) by adjusting the last
// element, guaranteeing Σout == available exactly.
func fixRoundingCarry(out []float64, available float64) {
	if len(out) == 0 {
		return
	}
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	diff := roundPx(available) - sum
	out[len(out)-1] += diff
}
