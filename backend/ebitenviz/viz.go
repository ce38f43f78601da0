// Package ebitenviz is a debug visualizer for the core layout model: it
// draws every visible window frame as a colored, unlabeled outline in an
// ebiten window, driven by polling a glide.Manager rather than any real
// window server. It satisfies no part of glide.Backend itself; it exists
// purely to let a developer watch Manager.Layout output change as
// commands are issued.
package ebitenviz

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/glide-wm/glide"
)

// Visualizer implements ebiten.Game, redrawing the current layout of one
// (space, screen) pair on every frame.
type Visualizer struct {
	Manager *glide.Manager
	Space   glide.SpaceId
	Screen  glide.ScreenSize

	now float64
}

// NewVisualizer creates a Visualizer over an already-populated manager.
func NewVisualizer(m *glide.Manager, space glide.SpaceId, screen glide.ScreenSize) *Visualizer {
	return &Visualizer{Manager: m, Space: space, Screen: screen}
}

// Update advances the visualizer's clock; the manager's own state is
// mutated by whatever is driving it externally (a reactor, or a test
// harness feeding commands in), not by this method.
func (v *Visualizer) Update() error {
	v.now += 1.0 / 60.0
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw outlines every visible frame glide.Manager.Layout currently
// reports; hidden frames are skipped.
func (v *Visualizer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	frames := v.Manager.Layout(v.Space, v.Screen, v.now)
	for i, f := range frames {
		if !f.Visible {
			continue
		}
		col := palette[i%len(palette)]
		vector.StrokeRect(screen, float32(f.Rect.X), float32(f.Rect.Y), float32(f.Rect.W), float32(f.Rect.H), 2, col, false)
	}
}

// Layout reports the ebiten window's logical size, matching the glide
// screen size being visualized.
func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.Screen.W, v.Screen.H
}

var palette = []color.Color{
	colornames.Deepskyblue,
	colornames.Orange,
	colornames.Limegreen,
	colornames.Orchid,
	colornames.Gold,
}
