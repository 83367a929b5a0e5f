package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// matchRunning reports whether the arena should be drawn. Nothing but the
// loading screen is drawn until the match starts.
func matchRunning(w donburi.World) bool {
	entry, ok := simcomponents.Match.First(w)
	if !ok {
		return false
	}
	return simcomponents.Match.Get(entry).State == simconfig.MatchStateRunning
}

func loadedAssets(w donburi.World) (*components.AssetsData, bool) {
	entry, ok := components.Assets.First(w)
	if !ok {
		return nil, false
	}
	return components.Assets.Get(entry), true
}

func arenaData(w donburi.World) (*simcomponents.ArenaData, bool) {
	entry, ok := simcomponents.Arena.First(w)
	if !ok {
		return nil, false
	}
	return simcomponents.Arena.Get(entry), true
}

// DrawBackground stretches the background over the screen and tiles the
// ground image along the ground line.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if !matchRunning(ecs.World) {
		return
	}
	a, ok := loadedAssets(ecs.World)
	if !ok || a.Background == nil {
		return
	}
	arena, ok := arenaData(ecs.World)
	if !ok {
		return
	}

	bw, bh := a.Background.Bounds().Dx(), a.Background.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(float64(cfg.C.Width)/float64(bw), float64(cfg.C.Height)/float64(bh))
	screen.DrawImage(a.Background, drawOp)

	if a.Ground == nil {
		return
	}
	gw := a.Ground.Bounds().Dx()
	if gw <= 0 {
		return
	}
	for x := 0; x < cfg.C.Width; x += gw {
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(float64(x), arena.GroundHeight)
		screen.DrawImage(a.Ground, drawOp)
	}
}

// DrawFighters draws the shared fighter sprite, mirrored for fighters
// facing left, with each fighter's name above it.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	if !matchRunning(ecs.World) {
		return
	}
	a, _ := loadedAssets(ecs.World)
	face := fonts.Label.Get()

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := simcomponents.Fighter.Get(e)
		b := fighter.Body

		if a != nil && a.Fighter != nil {
			sw, sh := a.Fighter.Bounds().Dx(), a.Fighter.Bounds().Dy()
			drawOp.GeoM.Reset()
			if b.FacingRight {
				drawOp.GeoM.Scale(b.W/float64(sw), b.H/float64(sh))
				drawOp.GeoM.Translate(b.X, b.Y)
			} else {
				drawOp.GeoM.Scale(-b.W/float64(sw), b.H/float64(sh))
				drawOp.GeoM.Translate(b.X+b.W, b.Y)
			}
			screen.DrawImage(a.Fighter, drawOp)
		}

		text.Draw(screen, fighter.Name, face, int(b.X), int(b.Y)-cfg.UI.NameOffsetY, cfg.UI.TextColor)
	})
}

// DrawPlatforms fills every platform rectangle.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	if !matchRunning(ecs.World) {
		return
	}
	arena, ok := arenaData(ecs.World)
	if !ok {
		return
	}
	for _, p := range arena.Platforms {
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), cfg.UI.PlatformColor, false)
	}
}
