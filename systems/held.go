package systems

import (
	"github.com/automoto/robofighter/components"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHeld pins every held grunt to its holder at the configured offset,
// mirrored by the holder's facing.
func UpdateHeld(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		for _, held := range components.Player.Get(playerEntry).Held {
			if held != nil && held.Valid() {
				placeHeld(playerEntry, held)
			}
		}
	})
}

func placeHeld(holder, held *donburi.Entry) {
	player := components.Player.Get(holder)
	holderObj := components.Object.Get(holder)
	offset := gamemath.MirrorX(player.Tuning.HoldOffset, player.FacingRight)

	obj := components.Object.Get(held)
	obj.SetCenter(holderObj.CenterX()+offset.X, holderObj.Y+holderObj.H/2+offset.Y)
	obj.Update()
}
