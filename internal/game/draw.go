package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bubble-wrap/internal/bubble"
	"github.com/iburimskiy/bubble-wrap/internal/config"
)

const (
	spriteSize = 128

	// debug font glyph size
	glyphWidth  = 6
	glyphHeight = 16

	statusBarHeight = 18
)

// sprites are white ellipse images scaled and tinted per bubble.
type sprites struct {
	fill    *ebiten.Image
	outline *ebiten.Image
}

func newSprites() *sprites {
	const c = spriteSize / 2
	fill := ebiten.NewImage(spriteSize, spriteSize)
	vector.DrawFilledCircle(fill, c, c, c, color.White, true)

	outline := ebiten.NewImage(spriteSize, spriteSize)
	vector.StrokeCircle(outline, c, c, c-1, 2, color.White, true)
	return &sprites{fill: fill, outline: outline}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sprites == nil {
		g.sprites = newSprites()
	}

	screen.Fill(config.Background)
	g.drawFlash(screen)

	for _, b := range g.session.Bubbles() {
		g.drawBubble(screen, b)
	}

	if g.reset.Enabled() {
		g.drawButton(screen)
	}

	g.drawStatus(screen)
}

func (g *Game) drawFlash(screen *ebiten.Image) {
	if g.flash <= 0 {
		return
	}
	c := color.NRGBA{R: config.FlashColor.R, G: config.FlashColor.G, B: config.FlashColor.B, A: uint8(96 * g.flash)}
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, c, false)
}

func (g *Game) drawBubble(screen *ebiten.Image, b *bubble.Bubble) {
	r := b.Bounds()

	var fill color.Color
	switch b.State() {
	case bubble.Popped:
		fill = config.PoppedColor
	case bubble.Hovered, bubble.Pressing:
		fill = config.BubbleHoverColor
	default:
		fill = config.BubbleColor
	}

	g.drawEllipse(screen, g.sprites.fill, r, fill)
	g.drawEllipse(screen, g.sprites.outline, r, config.OutlineColor)

	if b.Popped() {
		return
	}

	// Highlight in the upper left quarter
	hl := image.Rect(0, 0, r.Dx()/2, r.Dy()/4).Add(r.Min).Add(image.Pt(r.Dx()/4, r.Dy()/4))
	g.drawEllipse(screen, g.sprites.fill, hl, config.HighlightColor)

	if b.Pressing() {
		g.drawEllipse(screen, g.sprites.fill, r.Add(image.Pt(0, 2)), config.ShadowColor)
	}
}

func (g *Game) drawEllipse(screen, sprite *ebiten.Image, r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/spriteSize, float64(r.Dy())/spriteSize)
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	bg := config.ButtonColor
	if g.reset.Hovered() {
		bg = config.ButtonHoverColor
	}
	drawRoundedRect(screen, g.reset.Rect, config.ButtonRadius, bg)

	text := g.reset.Label
	x := g.reset.Rect.Min.X + (g.reset.Rect.Dx()-len(text)*glyphWidth)/2
	y := g.reset.Rect.Min.Y + (g.reset.Rect.Dy()-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

func drawRoundedRect(dst *ebiten.Image, r image.Rectangle, radius int, clr color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	rad := float32(radius)

	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(dst, x, y+rad, w, h-2*rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, clr, true)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, statusBarHeight, config.StatusBarColor, false)
	ebitenutil.DebugPrintAt(screen, g.status(), 4, 1)
}

// status is the text of the top bar.
func (g *Game) status() string {
	s := fmt.Sprintf("Popped %d/%d  %s  |  O: pop sound  Esc/Q: quit",
		g.session.PoppedCount(), g.session.Len(), formatDuration(g.elapsed()))
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}
