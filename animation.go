package glide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WindowAnimation drives a single window's in-flight move/resize, tweening
// its X/Y/W/H toward a target rectangle over a fixed duration. Unlike ViewportState's
// hand-rolled Spring (scroll.go), window moves have a fixed duration and
// are never retargeted mid-flight — an in-flight animation is replaced
// wholesale by BeginWindowAnimation, so gween's fixed-duration tweens fit
// directly.
type WindowAnimation struct {
	tweens [4]*gween.Tween
	Window WindowId
	Txn TransactionId
	done bool
}

// NewWindowAnimation builds a tween from from toward to over duration
// seconds using fn as the easing curve. txn is the transaction id of the
// BeginWindowAnimation request that started it, kept in Txn.
func NewWindowAnimation(window WindowId, txn TransactionId, from, to Rect, duration float32, fn ease.TweenFunc) *WindowAnimation {
	a := &WindowAnimation{Window: window, Txn: txn}
	a.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	a.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	a.tweens[2] = gween.New(float32(from.W), float32(to.W), duration, fn)
	a.tweens[3] = gween.New(float32(from.H), float32(to.H), duration, fn)
	return a
}

// Step advances the animation by dt seconds and returns the interpolated
// rectangle for this frame along with whether the animation has reached
// its target. Once Done, further Step calls keep returning the final
// rectangle.
func (a *WindowAnimation) Step(dt float32) (Rect, bool) {
	if a.done {
		return a.currentRect(), true
	}
	var r Rect
	allDone := true
	vals := [4]float32{}
	for i, tw := range a.tweens {
		v, finished := tw.Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	r = Rect{X: float64(vals[0]), Y: float64(vals[1]), W: float64(vals[2]), H: float64(vals[3])}
	a.done = allDone
	return r, allDone
}

// Done reports whether the most recent Step reached the target.
func (a *WindowAnimation) Done() bool { return a.done }

func (a *WindowAnimation) currentRect() Rect {
	vals := [4]float32{}
	for i, tw := range a.tweens {
		v, _ := tw.Update(0)
		vals[i] = v
	}
	return Rect{X: float64(vals[0]), Y: float64(vals[1]), W: float64(vals[2]), H: float64(vals[3])}
}

// AnimationSet tracks every window currently mid-animation, keyed by
// WindowId, so the reactor's AnimationTick handler can advance all of them
// in one pass and discover which have just finished.
type AnimationSet struct {
	active map[WindowId]*WindowAnimation
}

// NewAnimationSet creates an empty set.
func NewAnimationSet() *AnimationSet {
	return &AnimationSet{active: make(map[WindowId]*WindowAnimation)}
}

// Begin replaces any in-flight animation for window with a new one. This
// mirrors BeginWindowAnimation in sys.go: starting a new animation before
// the previous one finished simply discards it, the same "last write
// wins" semantics SetWindowFrame has.
func (a *AnimationSet) Begin(anim *WindowAnimation) {
	a.active[anim.Window] = anim
}

// Tick advances every active animation by dt and returns the frames that
// should be applied this step, plus the set of windows whose animation
// just completed (and should receive EndWindowAnimation).
func (a *AnimationSet) Tick(dt float32) (frames map[WindowId]Rect, finished []WindowId) {
	frames = make(map[WindowId]Rect, len(a.active))
	for w, anim := range a.active {
		r, done := anim.Step(dt)
		frames[w] = r
		if done {
			finished = append(finished, w)
			delete(a.active, w)
		}
	}
	return frames, finished
}

// Cancel drops window's in-flight animation, if any, without emitting an
// EndWindowAnimation request — used when a window is destroyed mid-move.
func (a *AnimationSet) Cancel(window WindowId) {
	delete(a.active, window)
}

// Active reports whether window currently has an in-flight animation.
func (a *AnimationSet) Active(window WindowId) bool {
	_, ok := a.active[window]
	return ok
}

// Len reports how many windows are currently animating.
func (a *AnimationSet) Len() int { return len(a.active) }
