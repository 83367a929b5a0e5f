// Package leveldata provides arena parsing shared between the simulation
// core and the client. It has no dependencies on ebitengine, donburi, or
// resolv; pure data only.
package leveldata

import "github.com/automoto/arena-duel/shared/gamemath"

// Arena is the immutable static geometry of the fighting stage.
type Arena struct {
	Width        float64
	Height       float64
	GroundHeight float64 // y of the ground line; fighters stand at GroundHeight - height

	// Platforms are kept in file order; landing resolution iterates them in
	// this order and the last overlapping platform wins.
	Platforms []gamemath.Rect
	Spawns    []SpawnPoint
}

// SpawnPoint is a fighter's starting position.
type SpawnPoint struct {
	X, Y        float64
	Index       int
	Name        string
	FacingRight bool
}

// Bounds returns the clamp limits for fighter movement.
func (a *Arena) Bounds() gamemath.Bounds {
	return gamemath.Bounds{Width: a.Width, GroundHeight: a.GroundHeight}
}

// Spawn returns the spawn point for a player index.
func (a *Arena) Spawn(index int) (SpawnPoint, bool) {
	for _, s := range a.Spawns {
		if s.Index == index {
			return s, true
		}
	}
	return SpawnPoint{}, false
}
