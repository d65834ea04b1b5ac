package engine

import (
	"time"

	"github.com/vovakirdan/astrododge/internal/core"
)

// Body is a kinematic box. Pos is the center; W and H are the full extents.
type Body struct {
	Pos   core.Vec2
	Vel   core.Vec2 // units per second
	W, H  float64
	Clamp bool // keep the box inside the world bounds
}

// Box returns the body's axis-aligned bounding box.
func (b Body) Box() core.RectF {
	return core.RectF{X: b.Pos.X - b.W/2, Y: b.Pos.Y - b.H/2, W: b.W, H: b.H}
}

// Overlaps reports whether two bodies' boxes intersect.
func Overlaps(a, b Body) bool {
	return a.Box().Intersects(b.Box())
}

// World integrates bodies inside fixed bounds.
type World struct {
	Bounds core.RectF
	paused bool
}

// NewWorld creates a world spanning (0,0)-(width,height).
func NewWorld(width, height float64) *World {
	return &World{Bounds: core.RectF{W: width, H: height}}
}

// Pause suspends integration.
func (w *World) Pause() { w.paused = true }

// Resume re-enables integration.
func (w *World) Resume() { w.paused = false }

// Paused reports whether integration is suspended.
func (w *World) Paused() bool { return w.paused }

// Center returns the midpoint of the world bounds.
func (w *World) Center() core.Vec2 {
	return w.Bounds.Center()
}

// Integrate advances b by dt at its current velocity, clamping it to the
// bounds when b.Clamp is set. Does nothing while the world is paused.
func (w *World) Integrate(b *Body, dt time.Duration) {
	if w.paused {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt.Seconds()))
	if !b.Clamp {
		return
	}
	b.Pos.X = core.ClampF(b.Pos.X, w.Bounds.X+b.W/2, w.Bounds.Right()-b.W/2)
	b.Pos.Y = core.ClampF(b.Pos.Y, w.Bounds.Y+b.H/2, w.Bounds.Bottom()-b.H/2)
}

// Outside reports whether b's center is more than margin beyond the bounds.
func (w *World) Outside(b Body, margin float64) bool {
	return b.Pos.X < w.Bounds.X-margin || b.Pos.X > w.Bounds.Right()+margin ||
		b.Pos.Y < w.Bounds.Y-margin || b.Pos.Y > w.Bounds.Bottom()+margin
}
