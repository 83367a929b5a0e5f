package core

import (
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/yohamta/donburi"
)

// stepFighters integrates every fighter in player order using the input
// snapshot taken for this tick.
func (m *Match) stepFighters() {
	params := gamemath.StepParams{
		Gravity:   m.tuning.Physics.Gravity,
		JumpSpeed: m.tuning.Physics.JumpSpeed,
	}
	bounds := m.arena.Bounds()

	for _, e := range m.fighters {
		entry := m.world.Entry(e)
		fighter := simcomponents.Fighter.Get(entry)
		input := simcomponents.PlayerInput.Get(entry)

		gamemath.Advance(&fighter.Body, input.Controls(), params, bounds)
		syncObject(entry)
	}
}

// syncObject copies a fighter's body position into its resolv object.
func syncObject(entry *donburi.Entry) {
	fighter := simcomponents.Fighter.Get(entry)
	obj := simcomponents.Object.Get(entry)
	obj.X = fighter.Body.X
	obj.Y = fighter.Body.Y
	obj.Update()
}
