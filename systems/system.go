package systems

import "github.com/yohamta/donburi"

// System advances one concern of the world by a single tick.
type System func(w donburi.World)
