package sim

import (
	"image/color"

	"github.com/automoto/flagrun/shared/gamemath"
)

// Point is a polygon vertex in screen space.
type Point struct {
	X, Y float64
}

// Sprite is a box with its render hint.
type Sprite struct {
	Box   gamemath.Box
	Color color.RGBA
}

// Flag is the goal marker as drawn: the collision box plus the pole and the waving
// triangle derived from it.
type Flag struct {
	Box        gamemath.Box
	Pole       gamemath.Box
	Triangle   [3]Point
	WaveOffset float64

	PoleColor color.RGBA
	FlagColor color.RGBA
}

// Snapshot is an immutable copy of the state a renderer needs after one tick.
type Snapshot struct {
	Character      Sprite
	Platforms      []Sprite
	Goal           Flag
	LevelCompleted bool
}
