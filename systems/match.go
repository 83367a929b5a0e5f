package systems

import (
	"github.com/automoto/arena-duel/assets"
	"github.com/automoto/arena-duel/components"
	"github.com/automoto/arena-duel/core"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch steps the simulation once per tick. The match ignores steps
// until it has been started.
func UpdateMatch(m *core.Match) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		m.Step()
	}
}

// AssetSource delivers finished image loads without blocking.
type AssetSource interface {
	Poll() (assets.Result, bool)
}

// UpdateAssets collects finished image loads. A successful background load
// starts the match; a failed one leaves it loading with the error recorded
// for the loading screen.
func UpdateAssets(loader AssetSource, m *core.Match) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		entry, ok := components.Assets.First(ecs.World)
		if !ok {
			return
		}
		a := components.Assets.Get(entry)

		for {
			r, ok := loader.Poll()
			if !ok {
				return
			}
			switch r.Path {
			case assets.BackgroundImage:
				if r.Err != nil {
					a.LoadErr = r.Err
					continue
				}
				a.Background = r.Image
				m.Start()
			case assets.GroundImage:
				a.Ground = r.Image
			case assets.FighterImage:
				a.Fighter = r.Image
			}
		}
	}
}
