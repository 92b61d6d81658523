package systems

import (
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateGoal latches level completion when the character touches the flag.
// It reports whether the latch was set during this call.
func UpdateGoal(w donburi.World, tick int) bool {
	levelComplete := GetOrCreateLevelComplete(w)
	if levelComplete.IsComplete {
		return false
	}

	characterEntry, ok := tags.Character.First(w)
	if !ok {
		return false
	}

	obj := components.Object.Get(characterEntry)
	check := obj.Check(0, 0, tags.ResolvGoal)
	if check == nil {
		return false
	}

	character := gamemath.Character{Box: components.Body.Get(characterEntry).Box}

	for _, goalObj := range check.ObjectsByTags(tags.ResolvGoal) {
		goalEntry, ok := goalObj.Data.(*donburi.Entry)
		if !ok || goalEntry == nil {
			continue
		}

		if gamemath.CheckCompletion(character, components.Body.Get(goalEntry).Box) {
			levelComplete.IsComplete = true
			levelComplete.CompletedAt = tick
			return true
		}
	}

	return false
}

// UpdateWave advances the flag's wave phase. It keeps running after completion.
func UpdateWave(w donburi.World, step float64) {
	tags.Goal.Each(w, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		goal.Phase = gamemath.AdvancePhase(goal.Phase, step)
	})
}
