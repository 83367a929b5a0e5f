package simcomponents

import (
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FighterData is the per-player simulation state.
type FighterData struct {
	Index int    // 0 = Player 1, 1 = Player 2
	Name  string // label drawn above the fighter
	Body  gamemath.Body
}

var Fighter = donburi.NewComponentType[FighterData]()

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
