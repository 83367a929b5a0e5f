package tags

import "github.com/yohamta/donburi"

var (
	Fighter   = donburi.NewTag().SetName("Fighter")
	Platform  = donburi.NewTag().SetName("Platform")
	HealthBar = donburi.NewTag().SetName("HealthBar")
)

// Resolv tags for broad-phase collision
const (
	ResolvFighter  = "fighter"
	ResolvPlatform = "platform"
)
