package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AssetsData holds the images the arena draws (singleton component).
// A nil image has not finished loading, or failed.
type AssetsData struct {
	Background *ebiten.Image
	Ground     *ebiten.Image
	Fighter    *ebiten.Image

	// LoadErr is the background failure shown on the loading screen.
	LoadErr error
}

var Assets = donburi.NewComponentType[AssetsData]()
