package systems

import (
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateKinematics applies input, gravity and the screen clamps to the character.
// Once the level is complete the character stays frozen.
func UpdateKinematics(w donburi.World, in gamemath.Controls, arena gamemath.Arena) {
	completed := IsLevelComplete(w)

	tags.Character.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)

		c := gamemath.Advance(gamemath.Character{Box: body.Box, Motion: *motion}, in, completed, arena)

		body.Box = c.Box
		*motion = c.Motion
		syncObject(e)
	})
}
