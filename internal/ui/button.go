// Package ui holds the on-screen controls drawn over the bubble grid.
package ui

import (
	"image"

	"github.com/iburimskiy/bubble-wrap/internal/input"
)

// Button is a rectangular labelled control. A disabled button is neither
// hovered nor clickable.
type Button struct {
	Rect  image.Rectangle
	Label string

	enabled bool
	hovered bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Label: label}
}

// BottomCenter returns a w x h rectangle centered horizontally in a
// width x height screen, margin pixels above the bottom edge.
func BottomCenter(width, height, w, h, margin int) image.Rectangle {
	x := (width - w) / 2
	y := height - h - margin
	return image.Rect(x, y, x+w, y+h)
}

func (b *Button) Enabled() bool { return b.enabled }
func (b *Button) Hovered() bool { return b.hovered }

// SetEnabled shows or hides the button. Hiding it clears the hover state.
func (b *Button) SetEnabled(on bool) {
	b.enabled = on
	if !on {
		b.hovered = false
	}
}

// UpdateHover recomputes the hover state from the pointer position.
func (b *Button) UpdateHover(p image.Point) {
	b.hovered = b.enabled && p.In(b.Rect)
}

// HandleClick reports whether a button-down edge landed on the button.
func (b *Button) HandleClick(p image.Point, pressed bool) bool {
	return b.enabled && pressed && p.In(b.Rect)
}

// Update runs hover and click handling for one frame and reports whether
// the button was clicked.
func (b *Button) Update(f input.Frame) bool {
	b.UpdateHover(f.Pointer)
	return b.HandleClick(f.Pointer, f.Pressed)
}
