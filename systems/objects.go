package systems

import (
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/systems/factory"
	"github.com/yohamta/donburi"
)

// syncObject moves the entity's broad phase proxy to follow its body.
func syncObject(e *donburi.Entry) {
	body := components.Body.Get(e)
	obj := components.Object.Get(e)

	proxy := body.Box.Inflate(factory.BroadPhaseMargin)
	obj.X = proxy.X
	obj.Y = proxy.Y
	obj.Update()
}
