package systems

import (
	"sort"

	"github.com/automoto/flagrun/components"
	"github.com/automoto/flagrun/shared/gamemath"
	"github.com/automoto/flagrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves the character against the platforms it currently touches.
func UpdateCollisions(w donburi.World, arena gamemath.Arena) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		motion := components.Motion.Get(e)
		obj := components.Object.Get(e)

		c := gamemath.Resolve(
			gamemath.Character{Box: body.Box, Motion: *motion},
			nearbyPlatforms(obj.Object),
			arena.GroundLine(),
		)

		body.Box = c.Box
		*motion = c.Motion
		syncObject(e)
	})
}

// nearbyPlatforms returns the boxes of platforms sharing a broad phase cell with the
// object, in level insertion order. Resolution depends on that order.
func nearbyPlatforms(object *resolv.Object) []gamemath.Box {
	check := object.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return nil
	}

	found := check.ObjectsByTags(tags.ResolvPlatform)
	candidates := make([]*donburi.Entry, 0, len(found))
	for _, o := range found {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		candidates = append(candidates, entry)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return components.Platform.Get(candidates[i]).Order < components.Platform.Get(candidates[j]).Order
	})

	boxes := make([]gamemath.Box, len(candidates))
	for i, entry := range candidates {
		boxes[i] = components.Body.Get(entry).Box
	}
	return boxes
}
