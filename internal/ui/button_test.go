package ui

import (
	"image"
	"testing"

	"github.com/iburimskiy/bubble-wrap/internal/input"
)

func newResetButton() *Button {
	return NewButton(BottomCenter(800, 600, 200, 50, 20), "Play Again")
}

func TestBottomCenter(t *testing.T) {
	if got := BottomCenter(800, 600, 200, 50, 20); got != image.Rect(300, 530, 500, 580) {
		t.Fatalf("rect = %v", got)
	}
}

func TestDisabledButtonIgnoresEverything(t *testing.T) {
	b := newResetButton()
	points := []image.Point{
		image.Pt(400, 555), // inside
		image.Pt(0, 0),
		image.Pt(299, 555),
	}
	for _, p := range points {
		b.UpdateHover(p)
		if b.Hovered() {
			t.Fatalf("disabled button hovered at %v", p)
		}
		if b.HandleClick(p, true) {
			t.Fatalf("disabled button clicked at %v", p)
		}
	}
}

func TestEnabledButtonClick(t *testing.T) {
	b := newResetButton()
	b.SetEnabled(true)

	cases := []struct {
		p       image.Point
		pressed bool
		want    bool
	}{
		{image.Pt(400, 555), true, true},
		{image.Pt(300, 530), true, true},
		{image.Pt(500, 555), true, false}, // max edge is exclusive
		{image.Pt(400, 555), false, false},
		{image.Pt(10, 10), true, false},
	}
	for _, c := range cases {
		if got := b.HandleClick(c.p, c.pressed); got != c.want {
			t.Errorf("HandleClick(%v, %v) = %v, want %v", c.p, c.pressed, got, c.want)
		}
	}
}

func TestHoverFollowsPointer(t *testing.T) {
	b := newResetButton()
	b.SetEnabled(true)

	b.UpdateHover(image.Pt(400, 555))
	if !b.Hovered() {
		t.Fatal("expected hover inside the button")
	}
	b.UpdateHover(image.Pt(400, 100))
	if b.Hovered() {
		t.Fatal("expected no hover outside the button")
	}

	b.UpdateHover(image.Pt(400, 555))
	b.SetEnabled(false)
	if b.Hovered() {
		t.Fatal("disabling should clear hover")
	}
}

func TestUpdateUsesPressEdge(t *testing.T) {
	b := newResetButton()
	b.SetEnabled(true)
	var tr input.Tracker
	inside := image.Pt(400, 555)

	if b.Update(tr.Next(input.State{Pointer: inside})) {
		t.Fatal("hover alone should not click")
	}
	if !b.Update(tr.Next(input.State{Pointer: inside, Down: true})) {
		t.Fatal("press edge inside should click")
	}
	if b.Update(tr.Next(input.State{Pointer: inside, Down: true})) {
		t.Fatal("holding the button should not click again")
	}
}
