package simcomponents

import (
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/yohamta/donburi"
)

// PlayerInputData is the per-tick snapshot of one player's controls. The
// client overwrites Current once per tick before the simulation reads it.
type PlayerInputData struct {
	Current [simconfig.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Controls converts the snapshot into physics controls.
func (p *PlayerInputData) Controls() gamemath.Controls {
	return gamemath.Controls{
		Left:  p.Current[simconfig.ActionMoveLeft],
		Right: p.Current[simconfig.ActionMoveRight],
		Jump:  p.Current[simconfig.ActionJump],
	}
}

// Set marks an action held or released for this tick.
func (p *PlayerInputData) Set(id simconfig.ActionID, held bool) {
	p.Current[id] = held
}
