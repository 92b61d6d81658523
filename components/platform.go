package components

import "github.com/yohamta/donburi"

// PlatformData records where a platform sits in the level's insertion order.
// Collision resolution visits platforms in this order.
type PlatformData struct {
	Order int
}

var Platform = donburi.NewComponentType[PlatformData]()
