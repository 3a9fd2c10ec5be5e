package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bubble-wrap/internal/audio"
	"github.com/iburimskiy/bubble-wrap/internal/config"
	"github.com/iburimskiy/bubble-wrap/internal/game"
	"github.com/iburimskiy/bubble-wrap/internal/log"
)

func main() {
	logger := log.New(os.Stderr, log.LevelInfo)

	if err := run(logger); err != nil {
		logger.Errorf("%v", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	pcm := audio.Synthesize(audio.PopParams{
		SampleRate: config.SampleRate,
		Duration:   config.PopDuration,
		Decay:      config.PopDecay,
	}, rand.New(rand.NewSource(time.Now().UnixNano())))
	pop := audio.NewSample(pcm, beep.SampleRate(config.SampleRate))
	logger.Infof("synthesized pop sound: %d samples at %d Hz", len(pcm), config.SampleRate)

	if path, err := cachePath(); err != nil {
		logger.Warnf("no cache dir for pop sound: %v", err)
	} else if err := pop.SaveWAV(path); err != nil {
		logger.Warnf("cache pop sound: %v", err)
	} else {
		logger.Infof("pop sound cached at %s", path)
	}

	spk, err := audio.NewSpeaker(pop)
	if err != nil {
		return err
	}
	defer spk.Stop()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	g := game.New(game.Options{
		Source: game.NewEbitenSource(),
		Player: spk,
		Logger: logger,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func cachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.CacheDirName, config.CacheFileName), nil
}
