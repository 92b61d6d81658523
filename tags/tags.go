package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Platform  = donburi.NewTag().SetName("Platform")
	Goal      = donburi.NewTag().SetName("Goal")
)

// Resolv tags for broad phase queries
const (
	ResolvCharacter = "character"
	ResolvPlatform  = "platform"
	ResolvGoal      = "goal"
)
