package systems

import (
	"testing"

	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/config"
	"github.com/automoto/flagrun/systems/factory"
	"github.com/automoto/flagrun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func newLevel(t *testing.T) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	character := factory.CreateLevel(w, config.Default())
	require.NotNil(t, character)
	return w, character
}

func moveTo(e *donburi.Entry, x, y float64) {
	body := components.Body.Get(e)
	body.X = x
	body.Y = y
	syncObject(e)
}

func TestUpdateGoalLatches(t *testing.T) {
	w, character := newLevel(t)

	assert.False(t, UpdateGoal(w, 1))
	assert.False(t, IsLevelComplete(w))

	moveTo(character, 1150, 620)
	assert.True(t, UpdateGoal(w, 7))
	assert.True(t, IsLevelComplete(w))
	assert.Equal(t, 7, GetOrCreateLevelComplete(w).CompletedAt)

	// Leaving the flag never clears the latch.
	moveTo(character, 100, 620)
	assert.False(t, UpdateGoal(w, 8))
	assert.True(t, IsLevelComplete(w))
	assert.Equal(t, 7, GetOrCreateLevelComplete(w).CompletedAt)
}

func TestUpdateGoalTouchingEdgeDoesNotComplete(t *testing.T) {
	w, character := newLevel(t)

	moveTo(character, 1130, 620)

	assert.False(t, UpdateGoal(w, 1))
}

func TestWithLevelCompleteCheck(t *testing.T) {
	w, _ := newLevel(t)
	calls := 0
	system := WithLevelCompleteCheck(func(donburi.World) { calls++ })

	system(w)
	GetOrCreateLevelComplete(w).IsComplete = true
	system(w)

	assert.Equal(t, 1, calls)
}

func TestUpdateWaveRunsAfterCompletion(t *testing.T) {
	w, _ := newLevel(t)
	GetOrCreateLevelComplete(w).IsComplete = true

	for i := 0; i < 10; i++ {
		UpdateWave(w, 0.1)
	}

	goalEntry, ok := tags.Goal.First(w)
	require.True(t, ok)
	assert.InDelta(t, 1.0, components.Goal.Get(goalEntry).Phase, 1e-9)
}

func TestGetOrCreateLevelCompleteSingleton(t *testing.T) {
	w := donburi.NewWorld()

	GetOrCreateLevelComplete(w).IsComplete = true

	assert.True(t, GetOrCreateLevelComplete(w).IsComplete)
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.LevelComplete)).Count(w))
}
