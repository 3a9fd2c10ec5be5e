package bubble

import (
	"image"
	"testing"
	"time"
)

const frame = time.Second / 60

var testAnim = Animation{
	SquishDuration: 10 * frame,
	PopDuration:    15 * frame,
	MaxSquish:      0.8,
	PopScale:       1.3,
}

func newTestBubble() *Bubble {
	return New(image.Pt(100, 200), 60, testAnim)
}

func TestNewBubbleIsIdle(t *testing.T) {
	b := newTestBubble()
	if b.State() != Idle {
		t.Fatalf("state = %v, want idle", b.State())
	}
	if b.Bounds() != image.Rect(100, 200, 160, 260) {
		t.Fatalf("bounds = %v, want base square", b.Bounds())
	}
}

func TestStateTransitions(t *testing.T) {
	b := newTestBubble()

	b.Enter()
	if b.State() != Hovered {
		t.Fatalf("after Enter: %v", b.State())
	}
	b.Leave()
	if b.State() != Idle {
		t.Fatalf("after Leave: %v", b.State())
	}

	b.Enter()
	b.Press()
	if b.State() != Pressing {
		t.Fatalf("after Press: %v", b.State())
	}
	if !b.Release() {
		t.Fatal("release over a pressed bubble should pop it")
	}
	if b.State() != Popped {
		t.Fatalf("after Release: %v", b.State())
	}
}

func TestPressRequiresHover(t *testing.T) {
	b := newTestBubble()
	b.Press()
	if b.Pressing() {
		t.Fatal("press without hover should be ignored")
	}
	if b.Release() {
		t.Fatal("release without press should not pop")
	}
}

func TestPopsExactlyOnce(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()

	pops := 0
	for i := 0; i < 3; i++ {
		if b.Release() {
			pops++
		}
		b.Enter()
		b.Press()
	}
	if pops != 1 {
		t.Fatalf("popped %d times, want 1", pops)
	}
	if b.Pressing() || b.Hovered() {
		t.Fatal("a popped bubble ignores hover and press")
	}
}

func TestLeaveAbandonsPress(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()
	b.Advance(5 * frame)
	b.Leave()

	if b.State() != Idle {
		t.Fatalf("state = %v, want idle", b.State())
	}
	if b.Release() {
		t.Fatal("release after leaving should not pop")
	}

	for i := 0; i < 10; i++ {
		b.Advance(frame)
	}
	if b.PressProgress() != 0 {
		t.Fatalf("press should decay to 0, got %f", b.PressProgress())
	}
	if b.Bounds() != b.Base() {
		t.Fatalf("bounds = %v, want %v", b.Bounds(), b.Base())
	}
}

func TestPressProgressClamped(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()

	for i := 0; i < 30; i++ {
		b.Advance(frame)
		if p := b.PressProgress(); p < 0 || p > 1 {
			t.Fatalf("frame %d: press progress %f out of range", i, p)
		}
	}
	if b.PressProgress() != 1 {
		t.Fatalf("expected full press, got %f", b.PressProgress())
	}

	b.Advance(time.Hour)
	if b.PressProgress() != 1 {
		t.Fatalf("large delta must clamp, got %f", b.PressProgress())
	}
}

func TestSquishShape(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()
	b.Advance(testAnim.SquishDuration)

	r := b.Bounds()
	if r.Dx() != 66 || r.Dy() != 48 {
		t.Fatalf("fully squished size = %dx%d, want 66x48", r.Dx(), r.Dy())
	}
	base := b.Base()
	if r.Min.X != base.Min.X-3 || r.Min.Y != base.Min.Y+6 {
		t.Fatalf("squished bounds not centered: %v in %v", r, base)
	}
}

func TestPopAnimation(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()
	b.Release()

	if b.PopProgress() != 1 {
		t.Fatalf("pop progress should start at 1, got %f", b.PopProgress())
	}

	b.Advance(testAnim.PopDuration / 2)
	r := b.Bounds()
	if r.Dx() != 78 || r.Dy() != 78 {
		t.Fatalf("mid-pop size = %dx%d, want 78x78", r.Dx(), r.Dy())
	}
	if r.Min != b.Base().Min.Sub(image.Pt(9, 9)) {
		t.Fatalf("mid-pop bounds not centered: %v", r)
	}

	prev := b.PopProgress()
	for i := 0; i < 20; i++ {
		b.Advance(frame)
		p := b.PopProgress()
		if p > prev {
			t.Fatalf("pop progress increased from %f to %f", prev, p)
		}
		prev = p
	}
	if prev != 0 {
		t.Fatalf("pop animation should finish, progress %f", prev)
	}
	if b.Bounds() != b.Base() {
		t.Fatalf("settled bounds = %v, want %v", b.Bounds(), b.Base())
	}
}

func TestPopStartsAndEndsAtBaseSize(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()
	b.Release()
	b.Advance(0)
	if r := b.Bounds(); r.Dx() != 60 {
		t.Fatalf("pop should start at scale 1, got width %d", r.Dx())
	}
}

func TestPoppedIsNotHittable(t *testing.T) {
	b := newTestBubble()
	center := image.Pt(130, 230)
	if !b.Hit(center) {
		t.Fatal("center should hit")
	}
	b.Enter()
	b.Press()
	b.Release()
	if b.Hit(center) {
		t.Fatal("popped bubble should not be hittable")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	b := newTestBubble()
	b.Enter()
	b.Press()
	b.Advance(frame)
	before := b.PressProgress()
	b.Advance(-time.Second)
	if b.PressProgress() != before {
		t.Fatalf("negative delta changed progress: %f -> %f", before, b.PressProgress())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Hovered: "hovered", Pressing: "pressing", Popped: "popped", State(9): "unknown"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), want)
		}
	}
}

func TestFloorHalf(t *testing.T) {
	cases := map[int]int{0: 0, 4: 2, 5: 2, -4: -2, -5: -3, -18: -9}
	for in, want := range cases {
		if got := floorHalf(in); got != want {
			t.Errorf("floorHalf(%d) = %d, want %d", in, got, want)
		}
	}
}
