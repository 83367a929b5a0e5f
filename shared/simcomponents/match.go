package simcomponents

import (
	"time"

	"github.com/automoto/arena-duel/shared/leveldata"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/yohamta/donburi"
)

// MatchData is the published match state renderers read. It is a singleton
// component rewritten by the match after every step.
type MatchData struct {
	State     simconfig.MatchStateID
	Elapsed   time.Duration
	Remaining time.Duration // may be negative; no clamp
	Tick      int
}

var Match = donburi.NewComponentType[MatchData]()

// ArenaData exposes the immutable arena to renderers.
type ArenaData struct {
	*leveldata.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
