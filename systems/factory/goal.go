package factory

import (
	"github.com/automoto/flagrun/archetypes"
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateGoal creates the flag. Its collision box stands on the anchor, lifted by the pole height.
func CreateGoal(w donburi.World, flag config.FlagConfig) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)

	box := gamemath.NewBox(flag.AnchorX, flag.AnchorY-flag.PoleHeight, flag.Width, flag.Height)

	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvGoal)
	obj.Data = goal

	components.Body.SetValue(goal, components.BodyData{Box: box})
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Goal.SetValue(goal, components.GoalData{Phase: 0})

	addToSpace(w, obj)

	return goal
}
