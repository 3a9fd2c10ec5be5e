package bubble

import (
	"image"
	"time"

	"github.com/iburimskiy/bubble-wrap/internal/input"
)

// Layout places Rows x Cols bubbles centered in a Width x Height area.
type Layout struct {
	Width, Height int
	Rows, Cols    int
	Size, Spacing int
}

// Origins returns the top-left corner of every cell in row-major order.
func (l Layout) Origins() []image.Point {
	if l.Rows <= 0 || l.Cols <= 0 {
		return nil
	}
	pitch := l.Size + l.Spacing
	startX := floorDiv(l.Width-l.Cols*pitch, 2)
	startY := floorDiv(l.Height-l.Rows*pitch, 2)

	out := make([]image.Point, 0, l.Rows*l.Cols)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			out = append(out, image.Pt(startX+col*pitch, startY+row*pitch))
		}
	}
	return out
}

// Session is the set of bubbles currently in play.
type Session struct {
	layout  Layout
	anim    Animation
	bubbles []*Bubble
	hover   int // index of the hovered bubble, -1 if none
	popped  int
}

func NewSession(layout Layout, anim Animation) *Session {
	s := &Session{layout: layout, anim: anim}
	s.build()
	return s
}

func (s *Session) build() {
	origins := s.layout.Origins()
	s.bubbles = make([]*Bubble, len(origins))
	for i, o := range origins {
		s.bubbles[i] = New(o, s.layout.Size, s.anim)
	}
	s.hover = -1
	s.popped = 0
}

// Reset discards every bubble and lays out a fresh grid.
func (s *Session) Reset() { s.build() }

func (s *Session) Len() int { return len(s.bubbles) }

// Bubbles returns the bubbles in render order. Callers must not modify the
// slice.
func (s *Session) Bubbles() []*Bubble { return s.bubbles }

// At returns the bubble at the given grid cell.
func (s *Session) At(row, col int) *Bubble {
	return s.bubbles[row*s.layout.Cols+col]
}

func (s *Session) PoppedCount() int { return s.popped }

// AllPopped reports whether every bubble has been popped.
func (s *Session) AllPopped() bool {
	for _, b := range s.bubbles {
		if !b.Popped() {
			return false
		}
	}
	return true
}

// Dispatch hit-tests the pointer once, delivers enter/leave and button edge
// events to the affected bubbles, then advances every animation by dt. It
// returns how many bubbles popped this tick.
func (s *Session) Dispatch(f input.Frame, dt time.Duration) int {
	hit := s.hitTest(f.Pointer)
	if hit != s.hover {
		if s.hover >= 0 {
			s.bubbles[s.hover].Leave()
		}
		if hit >= 0 {
			s.bubbles[hit].Enter()
		}
		s.hover = hit
	}

	pops := 0
	if hit >= 0 {
		b := s.bubbles[hit]
		if f.Pressed {
			b.Press()
		}
		if f.Released && b.Release() {
			pops++
			s.popped++
			s.hover = -1
		}
	}

	for _, b := range s.bubbles {
		b.Advance(dt)
	}
	return pops
}

func (s *Session) hitTest(p image.Point) int {
	for i, b := range s.bubbles {
		if b.Hit(p) {
			return i
		}
	}
	return -1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
