package simcomponents

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// PlatformData records a platform's position in arena order.
type PlatformData struct {
	Index int
}

var Platform = donburi.NewComponentType[PlatformData]()

var Space = donburi.NewComponentType[resolv.Space]()
