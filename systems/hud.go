package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHealthBars renders Player 1's bar in the top-left corner and Player
// 2's in the top-right. The fill never goes below zero width.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	if !matchRunning(ecs.World) {
		return
	}

	tags.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		fighter, ok := fighterByIndex(ecs.World, bar.FighterIndex)
		if !ok {
			return
		}
		hp := simcomponents.Health.Get(fighter)

		x, y := healthBarOrigin(bar.FighterIndex)
		w := float32(cfg.UI.HealthBarWidth)
		h := float32(cfg.UI.HealthBarHeight)

		ratio := 0.0
		if hp.Max > 0 {
			ratio = gamemath.ClampFloat(bar.Shown/float64(hp.Max), 0, 1)
		}

		vector.FillRect(screen, x, y, w*float32(ratio), h, cfg.UI.HealthBarFill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, cfg.UI.HealthBarOutline, false)
	})
}

func healthBarOrigin(fighterIndex int) (float32, float32) {
	y := float32(cfg.UI.HealthBarMargin)
	if fighterIndex == 0 {
		return float32(cfg.UI.HealthBarMargin), y
	}
	return float32(float64(cfg.C.Width) - cfg.UI.HealthBarWidth - cfg.UI.HealthBarMargin), y
}

// DrawTimer renders the remaining match time centered at the top.
func DrawTimer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := simcomponents.Match.First(ecs.World)
	if !ok || !matchRunning(ecs.World) {
		return
	}
	match := simcomponents.Match.Get(entry)

	timeStr := gamemath.FormatClock(match.Remaining)
	face := fonts.Timer.Get()
	textWidth := font.MeasureString(face, timeStr).Ceil()
	textX := cfg.C.Width/2 - textWidth/2

	text.Draw(screen, timeStr, face, textX, cfg.UI.TimerY, cfg.UI.TextColor)
}
