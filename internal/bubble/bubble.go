// Package bubble holds the poppable bubbles and the grid they live in.
package bubble

import (
	"image"
	"math"
	"time"
)

// State is the interaction state of a Bubble.
type State int

const (
	Idle State = iota
	Hovered
	Pressing
	Popped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Pressing:
		return "pressing"
	case Popped:
		return "popped"
	default:
		return "unknown"
	}
}

// Animation holds the timing and shape of the squish and pop effects.
type Animation struct {
	SquishDuration time.Duration
	PopDuration    time.Duration
	MaxSquish      float64 // vertical scale at full press
	PopScale       float64 // peak scale of the pop burst
}

// Bubble is one cell of bubble wrap. Its animation counters are elapsed
// durations, advanced by the measured frame delta.
type Bubble struct {
	origin image.Point
	size   int
	anim   Animation

	hovered  bool
	pressing bool
	popped   bool

	pressElapsed time.Duration // in [0, SquishDuration]
	popRemaining time.Duration // in [0, PopDuration]

	bounds image.Rectangle
}

func New(origin image.Point, size int, anim Animation) *Bubble {
	b := &Bubble{origin: origin, size: size, anim: anim}
	b.bounds = b.Base()
	return b
}

// Base is the unanimated square the bubble occupies.
func (b *Bubble) Base() image.Rectangle {
	return image.Rect(b.origin.X, b.origin.Y, b.origin.X+b.size, b.origin.Y+b.size)
}

// Bounds is the animated drawing rectangle from the last Advance.
func (b *Bubble) Bounds() image.Rectangle { return b.bounds }

func (b *Bubble) Popped() bool { return b.popped }
func (b *Bubble) Pressing() bool { return b.pressing }
func (b *Bubble) Hovered() bool { return b.hovered }

func (b *Bubble) State() State {
	switch {
	case b.popped:
		return Popped
	case b.pressing:
		return Pressing
	case b.hovered:
		return Hovered
	default:
		return Idle
	}
}

// Hit reports whether p lies on a bubble that can still be popped.
func (b *Bubble) Hit(p image.Point) bool {
	return !b.popped && p.In(b.bounds)
}

// Enter marks the pointer as over the bubble.
func (b *Bubble) Enter() {
	if b.popped {
		return
	}
	b.hovered = true
}

// Leave marks the pointer as gone; any press in progress is abandoned.
func (b *Bubble) Leave() {
	b.hovered = false
	b.pressing = false
}

// Press starts a squish if the pointer is over the bubble.
func (b *Bubble) Press() {
	if b.popped || !b.hovered {
		return
	}
	b.pressing = true
}

// Release ends a press. It returns true exactly once per bubble: when a
// press that started on the bubble is released over it.
func (b *Bubble) Release() bool {
	popped := false
	if b.hovered && b.pressing && !b.popped {
		b.popped = true
		b.hovered = false
		b.popRemaining = b.anim.PopDuration
		popped = true
	}
	b.pressing = false
	return popped
}

// PressProgress is the squish amount in [0, 1].
func (b *Bubble) PressProgress() float64 {
	return fraction(b.pressElapsed, b.anim.SquishDuration)
}

// PopProgress runs from 1 at the pop down to 0 when the burst is over.
func (b *Bubble) PopProgress() float64 {
	return fraction(b.popRemaining, b.anim.PopDuration)
}

// Advance moves both animations forward by dt and recomputes Bounds.
func (b *Bubble) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	b.popRemaining = clampDuration(b.popRemaining-dt, 0, b.anim.PopDuration)

	if b.pressing {
		b.pressElapsed += dt
	} else {
		b.pressElapsed -= dt
	}
	b.pressElapsed = clampDuration(b.pressElapsed, 0, b.anim.SquishDuration)

	b.bounds = b.transform()
}

func (b *Bubble) transform() image.Rectangle {
	var sx, sy float64
	if b.popped && b.popRemaining > 0 {
		s := 1 + (b.anim.PopScale-1)*math.Sin(b.PopProgress()*math.Pi)
		sx, sy = s, s
	} else {
		sy = 1 - (1-b.anim.MaxSquish)*b.PressProgress()
		sx = 1 + (1-sy)*0.5
	}

	w := int(float64(b.size) * sx)
	h := int(float64(b.size) * sy)
	x := b.origin.X + floorHalf(b.size-w)
	y := b.origin.Y + floorHalf(b.size-h)
	return image.Rect(x, y, x+w, y+h)
}

func fraction(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// floorHalf divides by two rounding toward negative infinity, so growth
// beyond the base square spills evenly to both sides.
func floorHalf(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}
