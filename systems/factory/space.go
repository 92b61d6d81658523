package factory

import (
	"github.com/automoto/flagrun/archetypes"
	"github.com/automoto/flagrun/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BroadPhaseMargin pads the character's proxy so every real overlap shares a cell.
const BroadPhaseMargin = 1.0

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj with the world's collision space, if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
