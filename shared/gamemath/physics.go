package gamemath

// Arena holds the screen bounds and global forces the character moves within.
type Arena struct {
	Width        float64
	Height       float64
	Gravity      float64
	GroundMargin float64
}

// GroundLine returns the lowest y the character's bottom edge may reach.
func (a Arena) GroundLine() float64 {
	return a.Height - a.GroundMargin
}

// Controls is the per-tick movement input.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Motion is the character's mutable movement state.
type Motion struct {
	Velocity  float64 // Vertical velocity, positive = falling
	Speed     float64 // Horizontal step per tick
	JumpPower float64 // Negative impulse applied on jump
	Grounded  bool
}

// Character is a bounding box plus its motion state.
type Character struct {
	Box Box
	Motion
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Advance integrates one tick of input and gravity into the character.
// A completed level freezes the character entirely.
func Advance(c Character, in Controls, levelCompleted bool, arena Arena) Character {
	if levelCompleted {
		return c
	}

	// Both directions held cancel out
	if in.Left {
		c.Box.X -= c.Speed
	}
	if in.Right {
		c.Box.X += c.Speed
	}
	c.Box.X = Clamp(c.Box.X, 0, arena.Width-c.Box.W)

	if c.Grounded && in.Jump {
		c.Velocity = c.JumpPower
		c.Grounded = false
	}

	// Gravity applies even when grounded; the ground clamp below cancels it.
	c.Velocity += arena.Gravity
	c.Box.Y += c.Velocity

	if ground := arena.GroundLine(); c.Box.Bottom() >= ground {
		c.Box.SetBottom(ground)
		c.Velocity = 0
		c.Grounded = true
	}

	return c
}
