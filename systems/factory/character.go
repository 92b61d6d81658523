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

func CreateCharacter(w donburi.World, cfg config.CharacterConfig) *donburi.Entry {
	character := archetypes.Character.Spawn(w)

	box := gamemath.NewBox(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height)
	proxy := box.Inflate(BroadPhaseMargin)

	obj := resolv.NewObject(proxy.X, proxy.Y, proxy.W, proxy.H, tags.ResolvCharacter)
	obj.Data = character

	components.Body.SetValue(character, components.BodyData{Box: box})
	components.Appearance.SetValue(character, components.AppearanceData{Color: cfg.Color})
	components.Motion.SetValue(character, gamemath.Motion{
		Speed:     cfg.Speed,
		JumpPower: cfg.JumpPower,
	})
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	addToSpace(w, obj)

	return character
}
