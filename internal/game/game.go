package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bubble-wrap/internal/audio"
	"github.com/iburimskiy/bubble-wrap/internal/bubble"
	"github.com/iburimskiy/bubble-wrap/internal/config"
	"github.com/iburimskiy/bubble-wrap/internal/input"
	"github.com/iburimskiy/bubble-wrap/internal/log"
	"github.com/iburimskiy/bubble-wrap/internal/ui"
)

// Player is the audio-output service the frame loop triggers on pops.
type Player interface {
	Play()
	Replace(s *audio.Sample)
	Level() float64
}

type Options struct {
	Source input.Source
	Player Player
	Logger *log.Logger

	// Now and ChooseFile default to time.Now and a native file dialog.
	Now        func() time.Time
	ChooseFile func() (string, error)
}

// Layout is the grid built from the fixed configuration.
func Layout() bubble.Layout {
	return bubble.Layout{
		Width:   config.WindowWidth,
		Height:  config.WindowHeight,
		Rows:    config.Rows,
		Cols:    config.Cols,
		Size:    config.BubbleSize,
		Spacing: config.BubbleSpacing,
	}
}

// Animation is the squish and pop timing from the fixed configuration.
func Animation() bubble.Animation {
	return bubble.Animation{
		SquishDuration: config.SquishDuration,
		PopDuration:    config.PopAnimDuration,
		MaxSquish:      config.MaxSquish,
		PopScale:       config.PopScale,
	}
}

// Game is the frame loop. It is driven by ebiten on a single goroutine.
type Game struct {
	source     input.Source
	player     Player
	logger     *log.Logger
	now        func() time.Time
	chooseFile func() (string, error)

	tracker input.Tracker
	session *bubble.Session
	reset   *ui.Button

	lastTick time.Time
	started  time.Time
	finished time.Time

	flash   float64
	lastErr error

	sprites *sprites
}

func New(opts Options) *Game {
	g := &Game{
		source:     opts.Source,
		player:     opts.Player,
		logger:     opts.Logger,
		now:        opts.Now,
		chooseFile: opts.ChooseFile,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.chooseFile == nil {
		g.chooseFile = chooseSoundFile
	}
	if g.logger == nil {
		g.logger = log.Discard()
	}

	g.session = bubble.NewSession(Layout(), Animation())
	g.reset = ui.NewButton(
		ui.BottomCenter(config.WindowWidth, config.WindowHeight, config.ButtonWidth, config.ButtonHeight, config.ButtonMargin),
		config.ButtonLabel,
	)
	g.started = g.now()
	g.logger.Infof("session started with %d bubbles", g.session.Len())
	return g
}

func (g *Game) Session() *bubble.Session { return g.session }

func (g *Game) ResetButton() *ui.Button { return g.reset }

func (g *Game) Update() error {
	now := g.now()
	dt := config.FramePeriod
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}

	f := g.tracker.Next(g.source.Poll())
	if f.Quit {
		return ebiten.Termination
	}
	if f.Browse {
		g.browseSound()
	}

	// The button is only enabled while every bubble is popped, so a click
	// on it never reaches a live grid. The click is consumed so it cannot
	// also press a bubble of the fresh grid underneath.
	if g.reset.Update(f) {
		g.session.Reset()
		g.started = now
		g.finished = time.Time{}
		f.Consume()
		g.logger.Infof("session reset")
	}

	pops := g.session.Dispatch(f, dt)
	for i := 0; i < pops; i++ {
		g.player.Play()
	}
	if pops > 0 {
		g.logger.Debugf("popped %d/%d", g.session.PoppedCount(), g.session.Len())
	}

	complete := g.session.AllPopped()
	if complete && g.finished.IsZero() {
		g.finished = now
		g.logger.Infof("all bubbles popped in %s", formatDuration(g.elapsed()))
	}
	g.reset.SetEnabled(complete)

	g.flash = clamp01(g.player.Level() * config.FlashGain)
	return nil
}

// elapsed is the session's play time, frozen once complete.
func (g *Game) elapsed() time.Duration {
	end := g.finished
	if end.IsZero() {
		end = g.lastTick
	}
	if end.Before(g.started) {
		return 0
	}
	return end.Sub(g.started)
}

func (g *Game) browseSound() {
	path, err := g.chooseFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.fail(fmt.Errorf("choose pop sound: %w", err))
		return
	}

	sample, err := audio.LoadFile(path, beep.SampleRate(config.SampleRate))
	if err != nil {
		g.fail(err)
		return
	}
	g.player.Replace(sample)
	g.lastErr = nil
	g.logger.Infof("pop sound replaced with %s", path)
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.logger.Errorf("%v", err)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
