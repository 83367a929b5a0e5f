package config

import (
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID is re-exported so client code can keep using config.ActionID.
type ActionID = simconfig.ActionID

const (
	ActionMoveLeft  = simconfig.ActionMoveLeft
	ActionMoveRight = simconfig.ActionMoveRight
	ActionJump      = simconfig.ActionJump
	ActionCount     = simconfig.ActionCount
)

// ControlSchemeID identifies one half of the split keyboard.
type ControlSchemeID int

const (
	ControlSchemeArrows ControlSchemeID = iota // Player 1
	ControlSchemeWASD                          // Player 2
)

// ControlSchemeBindings maps each scheme's actions to physical keys. There
// is no remapping surface; these are fixed.
var ControlSchemeBindings = []map[ActionID][]ebiten.Key{
	ControlSchemeArrows: {
		ActionMoveLeft:  {ebiten.KeyArrowLeft},
		ActionMoveRight: {ebiten.KeyArrowRight},
		ActionJump:      {ebiten.KeyArrowUp},
	},
	ControlSchemeWASD: {
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionJump:      {ebiten.KeyW},
	},
}

// PlayerControlScheme returns the keyboard half a player index uses.
func PlayerControlScheme(playerIndex int) ControlSchemeID {
	if playerIndex == 0 {
		return ControlSchemeArrows
	}
	return ControlSchemeWASD
}
