package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space and prints the
// tick counter.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes || !matchRunning(ecs.World) {
		return
	}

	spaceEntry, ok := simcomponents.Space.First(ecs.World)
	if ok {
		space := simcomponents.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvFighter) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	// Fighter bodies, which the objects above mirror after every step.
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		r := simcomponents.Fighter.Get(e).Body.Rect()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.Yellow, false)
	})

	if entry, ok := simcomponents.Match.First(ecs.World); ok {
		m := simcomponents.Match.Get(entry)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  elapsed %s  TPS %.0f", m.Tick, m.Elapsed, ebiten.ActualTPS()), 10, cfg.C.Height-20)
	}
}
