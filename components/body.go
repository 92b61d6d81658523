package components

import (
	"image/color"

	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the bounding box every visible entity collides and renders with.
type BodyData struct {
	gamemath.Box
}

var Body = donburi.NewComponentType[BodyData]()

// AppearanceData is the render hint paired with a body.
type AppearanceData struct {
	Color color.RGBA
}

var Appearance = donburi.NewComponentType[AppearanceData]()
