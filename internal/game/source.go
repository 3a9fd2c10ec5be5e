package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bubble-wrap/internal/input"
)

// NewEbitenSource reads the pointer and keyboard through ebiten.
func NewEbitenSource() input.Source {
	return input.SourceFunc(func() input.State {
		x, y := ebiten.CursorPosition()
		return input.State{
			Pointer: image.Pt(x, y),
			Down:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
			Browse:  inpututil.IsKeyJustPressed(ebiten.KeyO),
		}
	})
}

// chooseSoundFile asks the user for a custom pop sound.
func chooseSoundFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Choose Pop Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
}
