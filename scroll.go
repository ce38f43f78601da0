package glide

import "math"

// CenteringMode names a scroll-mode viewport's auto-recenter policy.
// Manager.SetCenteringMode stores it in ViewportState.Centering, but no
// code path reads it: focus changes never recenter the viewport, and
// only Manager.Scroll retargets it, whatever the mode.
type CenteringMode int

const (
	// CenteringAlways names recentering on every focus change.
	CenteringAlways CenteringMode = iota
	// CenteringOnOverflow names recentering only when the focused column
	// is partially offscreen.
	CenteringOnOverflow
	// CenteringNever names never auto-scrolling.
	CenteringNever
)

func (m CenteringMode) String() string {
	switch m {
	case CenteringAlways:
		return "always"
	case CenteringOnOverflow:
		return "on-overflow"
	default:
		return "never"
	}
}

// springStiffness and springDamping produce a critically damped response
// (damping = 2*sqrt(stiffness*mass), mass = 1): no overshoot, fastest
// settle time for a given stiffness.
const (
	springStiffness = 120.0
	springDamping = 2 * 10.954451150103322 // 2*sqrt(120)
)

// Spring is a hand-rolled critically damped mass-spring-damper with a
// closed-form solution, so Position can be evaluated at any later wall
// clock time without stepping through the intervening frames, with no
// fixed tick. gween's tweens run a fixed duration and lose velocity on
// retarget, which a viewport under continuous scroll input needs to
// preserve; that's why scrolling doesn't reuse the gween driver
// animation.go uses for window moves.
type Spring struct {
	target float64
	position float64
	velocity float64
	since float64 // wall-clock time at which position/velocity were last valid
}

// NewSpring creates a spring at rest at pos.
func NewSpring(pos float64, now float64) Spring {
	return Spring{target: pos, position: pos, since: now}
}

// Retarget changes the spring's destination without discontinuity: the
// spring's position and velocity evaluated at now become its new starting
// state, so a rapid re-retarget feels continuous rather than snapping.
func (s *Spring) Retarget(target float64, now float64) {
	pos, vel := s.evaluate(now)
	s.position, s.velocity, s.since, s.target = pos, vel, now, target
}

// Position reports where the spring is at now without mutating it.
func (s *Spring) Position(now float64) float64 {
	pos, _ := s.evaluate(now)
	return pos
}

// Velocity reports the spring's velocity at now without mutating it.
func (s *Spring) Velocity(now float64) float64 {
	_, vel := s.evaluate(now)
	return vel
}

// evaluate solves the critically damped spring-damper ODE in closed form
// for elapsed = now - s.since:
//
//	x(t) = target + (x0 + (v0 + w*x0)*t) * e^(-w*t)
//
// where x0, v0 are position/velocity relative to target at t=0 and
// w = sqrt(stiffness). Returns (position, velocity) at now.
func (s *Spring) evaluate(now float64) (float64, float64) {
	t := now - s.since
	if t <= 0 {
		return s.position, s.velocity
	}
	w := math.Sqrt(springStiffness)
	x0 := s.position - s.target
	v0 := s.velocity
	decay := math.Exp(-w * t)
	pos := s.target + (x0+(v0+w*x0)*t)*decay
	vel := (v0 - w*(v0+w*x0)*t) * decay
	return pos, vel
}

// ViewportState is the scroll-mode component attached to a layout whose
// Mode is ModeScroll. A nil Spring means the viewport is not currently animating;
// Offset is then authoritative.
type ViewportState struct {
	Offset float64
	Target *float64
	Spring *Spring
	Centering CenteringMode
}

// NewViewportState creates a viewport at rest, offset 0, with Centering
// set to CenteringAlways.
func NewViewportState() ViewportState {
	return ViewportState{Centering: CenteringAlways}
}

// ScrollTo starts (or retargets) an animated move of the viewport to
// target, preserving in-flight velocity per Spring.Retarget.
func (v *ViewportState) ScrollTo(target float64, now float64) {
	v.Target = &target
	if v.Spring == nil {
		s := NewSpring(v.Offset, now)
		v.Spring = &s
	}
	v.Spring.Retarget(target, now)
}

// Tick advances the viewport's offset to its spring's position at now,
// clearing the spring once it has settled within eps of the target at a
// velocity below velEps.
func (v *ViewportState) Tick(now float64, eps, velEps float64) {
	if v.Spring == nil {
		return
	}
	v.Offset = v.Spring.Position(now)
	if math.Abs(v.Offset-*v.Target) < eps && math.Abs(v.Spring.Velocity(now)) < velEps {
		v.Offset = *v.Target
		v.Spring = nil
		v.Target = nil
	}
}

// NaturalColumnWidth is the scroll-mode convention that a top-level
// column's weight is itself the column's width in
// pixels, not a proportional share of a bounded extent — a column keeps
// the width it was given until explicitly resized, regardless of how many
// sibling columns exist.
func NaturalColumnWidth(t *Tree, column NodeId) float64 { return t.Size(column) }

// ScrollModeBounds computes the bounding rectangle scroll-mode layout
// should hand to Calculate: height matches screen, but width is the sum
// of every top-level column's natural width plus the inner gaps between
// them, so Calculate never compresses columns to fit the screen. The
// caller then shifts the resulting frames by the viewport offset via
// ApplyViewportToFrames.
func ScrollModeBounds(t *Tree, root NodeId, cfg CalcConfig, screen Rect) Rect {
	children := t.Children(root)
	width := 0.0
	for i, ch := range children {
		width += NaturalColumnWidth(t, ch)
		if i > 0 {
			width += cfg.InnerGap
		}
	}
	return Rect{X: screen.X, Y: screen.Y, W: width, H: screen.H}
}

// ApplyViewportToFrames shifts every frame's X by -offset and replaces any
// frame whose resulting horizontal extent lies entirely outside screen
// with a hidden rectangle.
func ApplyViewportToFrames(frames []Frame, offset float64, screen Rect) {
	for i := range frames {
		f := &frames[i]
		if !f.Visible {
			continue
		}
		f.Rect.X -= offset
		if f.Rect.X+f.Rect.W <= screen.X || f.Rect.X >= screen.X+screen.W {
			f.Rect = Hidden(f.Rect.W, f.Rect.H)
			f.Visible = false
		}
	}
}

// ColumnExtent returns column's [start, start+width) span within the
// natural (unscrolled) coordinate space computed by ScrollModeBounds,
// used by Manager.Scroll to pick a target offset.
func ColumnExtent(t *Tree, root, column NodeId, innerGap float64) (start, width float64) {
	children := t.Children(root)
	x := 0.0
	for _, ch := range children {
		w := NaturalColumnWidth(t, ch)
		if ch == column {
			return x, w
		}
		x += w + innerGap
	}
	return 0, 0
}

// CenterTarget computes the viewport offset that would center column
// within a viewport of the given width, clamped so content edges never
// pull inward past the viewport's own edges.
func CenterTarget(columnStart, columnWidth, viewportWidth, contentWidth float64) float64 {
	ideal := columnStart + columnWidth/2 - viewportWidth/2
	maxOffset := math.Max(0, contentWidth-viewportWidth)
	if ideal < 0 {
		ideal = 0
	}
	if ideal > maxOffset {
		ideal = maxOffset
	}
	return ideal
}
