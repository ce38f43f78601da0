package glide

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestWindowAnimationReachesTarget(t *testing.T) {
	from := Rect{X: 0, Y: 0, W: 100, H: 100}
	to := Rect{X: 200, Y: 100, W: 400, H: 300}
	a := NewWindowAnimation(WindowId{Pid: 1, Slot: 1}, 1, from, to, 1.0, ease.Linear)

	a.Step(0.5)
	r, done := a.Step(0.5)

	if !done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(r.X-to.X) > 0.5 || math.Abs(r.Y-to.Y) > 0.5 {
		t.Errorf("rect = %+v, want ~%+v", r, to)
	}
	if math.Abs(r.W-to.W) > 0.5 || math.Abs(r.H-to.H) > 0.5 {
		t.Errorf("rect = %+v, want ~%+v", r, to)
	}
}

func TestWindowAnimationStaysDoneAfterFinish(t *testing.T) {
	from := Rect{X: 0, Y: 0, W: 10, H: 10}
	to := Rect{X: 10, Y: 10, W: 20, H: 20}
	a := NewWindowAnimation(WindowId{Pid: 1, Slot: 1}, 1, from, to, 0.1, ease.Linear)

	a.Step(1.0)
	if !a.Done() {
		t.Fatal("expected done")
	}
	r1, _ := a.Step(5.0)
	r2, _ := a.Step(5.0)
	if r1 != r2 {
		t.Errorf("rect changed after done: %+v != %+v", r1, r2)
	}
}

func TestAnimationSetTicksAllActive(t *testing.T) {
	set := NewAnimationSet()
	w1 := WindowId{Pid: 1, Slot: 1}
	w2 := WindowId{Pid: 2, Slot: 1}
	set.Begin(NewWindowAnimation(w1, 1, Rect{}, Rect{X: 100}, 1.0, ease.Linear))
	set.Begin(NewWindowAnimation(w2, 1, Rect{}, Rect{X: 200}, 2.0, ease.Linear))

	frames, finished := set.Tick(1.0)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if len(finished) != 1 || finished[0] != w1 {
		t.Errorf("expected only w1 finished, got %v", finished)
	}
	if !set.Active(w2) {
		t.Error("w2 should still be active")
	}
	if set.Active(w1) {
		t.Error("w1 should have been removed on finish")
	}
}

func TestAnimationSetBeginReplacesInFlight(t *testing.T) {
	set := NewAnimationSet()
	w := WindowId{Pid: 1, Slot: 1}
	set.Begin(NewWindowAnimation(w, 1, Rect{}, Rect{X: 100}, 1.0, ease.Linear))
	set.Tick(0.5)

	set.Begin(NewWindowAnimation(w, 2, Rect{X: 50}, Rect{X: 300}, 1.0, ease.Linear))
	if set.Len() != 1 {
		t.Fatalf("expected 1 active animation, got %d", set.Len())
	}
}

func TestAnimationSetCancelDropsWithoutFinishing(t *testing.T) {
	set := NewAnimationSet()
	w := WindowId{Pid: 1, Slot: 1}
	set.Begin(NewWindowAnimation(w, 1, Rect{}, Rect{X: 100}, 1.0, ease.Linear))
	set.Cancel(w)

	if set.Active(w) {
		t.Error("expected window removed after cancel")
	}
	_, finished := set.Tick(1.0)
	if len(finished) != 0 {
		t.Error("cancelled animation should not appear as finished")
	}
}
