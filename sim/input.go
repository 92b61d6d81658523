package sim

import "github.com/automoto/flagrun/shared/gamemath"

// Input is everything the simulation reads from the player in one tick.
type Input struct {
	gamemath.Controls
	Quit bool
}

// InputSource is polled once at the start of every tick.
type InputSource interface {
	Poll() Input
}

// Renderer receives the finished state of every tick.
type Renderer interface {
	Render(s Snapshot)
}
