package components

import "github.com/yohamta/donburi"

// GoalData holds the flag's cosmetic wave state. It never affects collision.
type GoalData struct {
	Phase float64
}

var Goal = donburi.NewComponentType[GoalData]()
