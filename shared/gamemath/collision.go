package gamemath

// Resolve corrects the character against static platforms after Advance.
//
// Grounded is recomputed from scratch. Each overlapping platform is classified by the
// sign of the vertical velocity and whether the character could have crossed that
// platform's surface during this tick:
//   - falling onto the top snaps the bottom edge to the platform top and grounds the
//     character; later platforms may overwrite an earlier landing
//   - rising into the underside snaps the top edge to the platform bottom and stops the
//     pass at the first such hit
//
// Any other overlap, such as walking into a platform's side, is left unresolved.
// Finally, a character resting on the ground line is grounded regardless of platforms.
func Resolve(c Character, platforms []Box, groundLine float64) Character {
	c.Grounded = false

	for _, p := range platforms {
		if !c.Box.Overlaps(p) {
			continue
		}

		if c.Velocity > 0 && c.Box.Bottom() <= p.Top()+c.Velocity {
			c.Box.SetBottom(p.Top())
			c.Velocity = 0
			c.Grounded = true
		} else if c.Velocity < 0 && c.Box.Top() >= p.Bottom()+c.Velocity {
			c.Box.SetTop(p.Bottom())
			c.Velocity = 0
			break
		}
	}

	if c.Box.Bottom() >= groundLine {
		c.Grounded = true
	}

	return c
}

// CheckCompletion reports whether the character touches the goal.
func CheckCompletion(c Character, goal Box) bool {
	return c.Box.Overlaps(goal)
}
