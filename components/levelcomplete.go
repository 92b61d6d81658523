package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the session's completion latch
type LevelCompleteData struct {
	IsComplete  bool
	CompletedAt int // Tick the goal was first touched
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
