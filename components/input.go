package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputStateData is the set of keys currently held down, built from
// press/release events rather than polled key state.
type InputStateData struct {
	Held map[ebiten.Key]bool
}

func (i *InputStateData) Press(k ebiten.Key) {
	if i.Held == nil {
		i.Held = make(map[ebiten.Key]bool)
	}
	i.Held[k] = true
}

func (i *InputStateData) Release(k ebiten.Key) {
	delete(i.Held, k)
}

// AnyHeld reports whether at least one of keys is held.
func (i *InputStateData) AnyHeld(keys []ebiten.Key) bool {
	for _, k := range keys {
		if i.Held[k] {
			return true
		}
	}
	return false
}

var InputState = donburi.NewComponentType[InputStateData]()
