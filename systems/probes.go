package systems

import (
	"github.com/automoto/robofighter/collision"
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProbes refreshes grounded and proximity flags before any actor logic
// runs.
func UpdateProbes(ecs *ecs.ECS) {
	gw := gatewayOf(ecs)
	if gw == nil {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic {
			physics.Grounded = false
			return
		}
		obj := components.Object.Get(e)
		feet := obj.Box().Below(cfg.Physics.GroundProbeDepth, cfg.Physics.GroundProbeInset)
		physics.Grounded = gw.Overlaps(feet, tags.ResolvSolid)
	})

	tags.Grunt.Each(ecs.World, func(e *donburi.Entry) {
		grunt := components.Grunt.Get(e)
		if grunt.Grabbed {
			grunt.InFrontOfPlayer = false
			return
		}
		obj := components.Object.Get(e)
		front := obj.Box().Ahead(grunt.Tuning.FrontReach, grunt.FacingRight)
		grunt.InFrontOfPlayer = gw.Overlaps(front, tags.ResolvPlayer)
	})
}

func gatewayOf(ecs *ecs.ECS) collision.Gateway {
	entry, ok := components.Gateway.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Gateway.Get(entry).Gateway
}
