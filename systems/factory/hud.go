package factory

import (
	"github.com/automoto/arena-duel/components"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CreateInputState adds the held-key singleton the input systems write to.
func CreateInputState(w donburi.World) *donburi.Entry {
	entry := w.Entry(w.Create(components.InputState))
	components.InputState.SetValue(entry, components.InputStateData{
		Held: make(map[ebiten.Key]bool),
	})
	return entry
}

// CreateAssets adds the singleton holding the loaded images.
func CreateAssets(w donburi.World) *donburi.Entry {
	return w.Entry(w.Create(components.Assets))
}

// CreateHealthBar adds a HUD bar that follows the given fighter's health.
func CreateHealthBar(w donburi.World, fighter *donburi.Entry) *donburi.Entry {
	bar := w.Entry(w.Create(tags.HealthBar, components.HealthBar))
	f := simcomponents.Fighter.Get(fighter)
	hp := simcomponents.Health.Get(fighter)
	components.HealthBar.SetValue(bar, components.HealthBarData{
		FighterIndex: f.Index,
		Shown:        float64(hp.Current),
		Target:       hp.Current,
	})
	return bar
}
