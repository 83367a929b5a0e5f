package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable key buffer to avoid allocations
var keyBuf []ebiten.Key

// UpdateKeyEvents applies this tick's key releases and presses to the
// held-key state. Must run BEFORE UpdatePlayerInput.
func UpdateKeyEvents(ecs *ecs.ECS) {
	entry, ok := components.InputState.First(ecs.World)
	if !ok {
		return
	}
	state := components.InputState.Get(entry)

	keyBuf = inpututil.AppendJustReleasedKeys(keyBuf[:0])
	for _, k := range keyBuf {
		state.Release(k)
	}

	keyBuf = inpututil.AppendJustPressedKeys(keyBuf[:0])
	for _, k := range keyBuf {
		state.Press(k)
	}
}

// UpdatePlayerInput snapshots the held keys into each fighter's action
// state through its control scheme. The simulation reads only this snapshot.
func UpdatePlayerInput(ecs *ecs.ECS) {
	entry, ok := components.InputState.First(ecs.World)
	if !ok {
		return
	}
	state := components.InputState.Get(entry)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := simcomponents.Fighter.Get(e)
		input := simcomponents.PlayerInput.Get(e)

		scheme := cfg.PlayerControlScheme(fighter.Index)
		if int(scheme) >= len(cfg.ControlSchemeBindings) {
			return
		}
		bindings := cfg.ControlSchemeBindings[scheme]

		for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
			input.Set(action, state.AnyHeld(bindings[action]))
		}
	})
}
