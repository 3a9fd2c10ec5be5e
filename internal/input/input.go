// Package input turns per-tick pointer snapshots into discrete edge events.
package input

import "image"

// State is what the presentation layer reports once per tick.
type State struct {
	Pointer image.Point
	Down    bool // primary button held
	Quit    bool
	Browse  bool // user asked to pick a custom pop sound
}

// Source delivers one State per tick.
type Source interface {
	Poll() State
}

// SourceFunc adapts a function to Source.
type SourceFunc func() State

func (f SourceFunc) Poll() State { return f() }

// Frame is a State with button edges resolved against the previous tick.
type Frame struct {
	State
	Pressed  bool // button went down this tick
	Released bool // button went up this tick
}

// Consume clears the button edges so no one else reacts to them.
func (f *Frame) Consume() {
	f.Pressed = false
	f.Released = false
}

// Tracker remembers the previous button level to derive edges.
type Tracker struct {
	prevDown bool
}

func (t *Tracker) Next(s State) Frame {
	f := Frame{
		State:    s,
		Pressed:  s.Down && !t.prevDown,
		Released: !s.Down && t.prevDown,
	}
	t.prevDown = s.Down
	return f
}
