package factory

import (
	"image/color"

	"github.com/automoto/flagrun/archetypes"
	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform adds a static platform. order fixes its place in collision resolution.
// Negative sizes panic.
func CreatePlatform(w donburi.World, x, y, width, height float64, order int, c color.RGBA) *donburi.Entry {
	box := gamemath.NewBox(x, y, width, height)
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvPlatform)
	obj.Data = platform // Link for O(1) lookup

	components.Platform.SetValue(platform, components.PlatformData{Order: order})
	components.Body.SetValue(platform, components.BodyData{Box: box})
	components.Appearance.SetValue(platform, components.AppearanceData{Color: c})
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(w, obj)

	return platform
}
