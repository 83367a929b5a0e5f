package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawLoading covers the screen until the match starts, showing the load
// error if the background could not be loaded.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	if matchRunning(ecs.World) {
		return
	}
	screen.Fill(cfg.UI.LoadingBackground)

	face := fonts.Timer.Get()
	msg := "Loading..."
	drawCentered(screen, msg, face, cfg.C.Height/2, cfg.UI.TextColor)

	a, ok := loadedAssets(ecs.World)
	if !ok || a.LoadErr == nil {
		return
	}
	errMsg := fmt.Sprintf("could not load arena: %v", a.LoadErr)
	drawCentered(screen, errMsg, fonts.Label.Get(), cfg.C.Height/2+40, cfg.UI.LoadingErrorColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cfg.C.Width/2-w/2, y, clr)
}
