package factory

import (
	"github.com/automoto/flagrun/archetypes"
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/config"
	"github.com/yohamta/donburi"
)

// CreateLevel builds the whole session: collision space, platforms in layout order,
// the goal flag, the character and the completion latch. It returns the character.
func CreateLevel(w donburi.World, cfg *config.Config) *donburi.Entry {
	CreateSpace(w, cfg.Width, cfg.Height, cfg.CellSize, cfg.CellSize)

	for i, p := range cfg.Platforms {
		CreatePlatform(w, p.X, p.Y, p.Width, p.Height, i, cfg.PlatformColor)
	}

	CreateGoal(w, cfg.Flag)

	latch := archetypes.LevelComplete.Spawn(w)
	components.LevelComplete.SetValue(latch, components.LevelCompleteData{})

	return CreateCharacter(w, cfg.Character)
}
