package components

import (
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Motion holds the character's velocity, movement constants and grounded flag.
var Motion = donburi.NewComponentType[gamemath.Motion]()
