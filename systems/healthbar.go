package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealthBars retargets each bar when its fighter's health changes and
// advances the drain tween.
func UpdateHealthBars(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))

	tags.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		fighter, ok := fighterByIndex(ecs.World, bar.FighterIndex)
		if !ok {
			return
		}
		hp := simcomponents.Health.Get(fighter)

		if hp.Current != bar.Target {
			bar.Target = hp.Current
			bar.Tween = gween.New(float32(bar.Shown), float32(hp.Current), cfg.UI.HealthDrainTime, ease.OutQuad)
		}

		if bar.Tween == nil {
			return
		}
		current, done := bar.Tween.Update(dt)
		bar.Shown = float64(current)
		if done {
			bar.Shown = float64(bar.Target)
			bar.Tween = nil
		}
	})
}

func fighterByIndex(w donburi.World, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		if found == nil && simcomponents.Fighter.Get(e).Index == index {
			found = e
		}
	})
	return found, found != nil
}
