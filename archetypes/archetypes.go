package archetypes

import (
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Body,
		components.Appearance,
		components.Motion,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
		components.Appearance,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	LevelComplete = newArchetype(
		components.LevelComplete,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
