package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Bubble Wrap Popper"

	// Frame loop target
	TPS = 60

	// Grid
	BubbleSize    = 60
	BubbleSpacing = 10
	Rows          = 8
	Cols          = 11

	// Animation, in frames at TPS
	SquishFrames = 10
	PopFrames    = 15
	MaxSquish    = 0.8 // minimum vertical scale when fully pressed
	PopScale     = 1.3 // peak scale during the pop burst

	// Reset control
	ButtonWidth  = 200
	ButtonHeight = 50
	ButtonMargin = 20
	ButtonRadius = 10
	ButtonLabel  = "Play Again"

	// Pop sound
	SampleRate  = 44100
	PopDuration = 100 * time.Millisecond
	PopDecay    = 50.0

	// Longest frame delta fed to the animations
	MaxFrameDelta = 100 * time.Millisecond

	// Background flash per unit of output RMS
	FlashGain = 2.5

	CacheDirName  = "bubble-wrap"
	CacheFileName = "pop.wav"
)

// FramePeriod is the duration of one tick at TPS.
const FramePeriod = time.Second / TPS

const (
	SquishDuration  = SquishFrames * FramePeriod
	PopAnimDuration = PopFrames * FramePeriod
)

var (
	Background       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BubbleColor      = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	BubbleHoverColor = color.RGBA{R: 143, G: 186, B: 200, A: 255}
	PoppedColor      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	OutlineColor     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	HighlightColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	ShadowColor      = color.NRGBA{R: 0, G: 0, B: 0, A: 50}
	ButtonColor      = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	ButtonHoverColor = color.RGBA{R: 80, G: 180, B: 80, A: 255}
	StatusBarColor   = color.NRGBA{R: 0, G: 0, B: 0, A: 120}
	FlashColor       = color.RGBA{R: 173, G: 216, B: 230, A: 255}
)
