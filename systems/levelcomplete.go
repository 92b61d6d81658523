package systems

import (
	"github.com/automoto/flagrun/archetypes"
	"github.com/automoto/flagrun/components"
	"github.com/yohamta/donburi"
)

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(w donburi.World) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(w); !ok {
		ent := archetypes.LevelComplete.Spawn(w)
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(w)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(w donburi.World) bool {
	return GetOrCreateLevelComplete(w).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system System) System {
	return func(w donburi.World) {
		if IsLevelComplete(w) {
			return
		}
		system(w)
	}
}
