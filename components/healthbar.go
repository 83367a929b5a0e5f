package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthBarData is the HUD view of one fighter's health. Shown eases toward
// the fighter's current value so damage drains instead of jumping.
type HealthBarData struct {
	FighterIndex int
	Shown        float64
	Target       int
	Tween        *gween.Tween
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
