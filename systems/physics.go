package systems

import (
	"math"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon is the slack allowed when deciding whether a blocker spans
// the mover on the other axis.
const contactEpsilon = 0.01

// UpdatePhysics integrates every non-kinematic body: gravity, then horizontal
// and vertical moves resolved against the body's blockers.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Sim.DeltaTime()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic {
			physics.Landed = false
			physics.GroundContact = false
			return
		}
		obj := components.Object.Get(e).Object

		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed, dt)

		resolveHorizontal(physics, obj, physics.SpeedX*dt)
		contact := resolveVertical(physics, obj, physics.SpeedY*dt)
		obj.Update()

		physics.Landed = contact && !physics.Grounded
		physics.GroundContact = contact

		if contact {
			onGroundContact(e, physics)
		}
	})
}

func onGroundContact(e *donburi.Entry, physics *components.PhysicsData) {
	if e.HasComponent(tags.Grunt) {
		onGruntGroundContact(e)
	}
	if physics.Landed && e.HasComponent(tags.Player) {
		onPlayerLanded(e)
	}
}

// resolveHorizontal moves object by dx, stopping flush against the nearest
// blocker in the way.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, physics.Blockers...); check != nil {
		for _, o := range blockersIn(check, physics.Blockers) {
			if object.Y+object.H <= o.Y+contactEpsilon || object.Y >= o.Y+o.H-contactEpsilon {
				continue
			}
			if dx > 0 && o.X >= object.X+object.W-contactEpsilon {
				if gap := o.X - (object.X + object.W); gap < dx {
					dx = math.Max(gap, 0)
					physics.SpeedX = 0
				}
			} else if dx < 0 && o.X+o.W <= object.X+contactEpsilon {
				if gap := object.X - (o.X + o.W); -gap > dx {
					dx = -math.Max(gap, 0)
					physics.SpeedX = 0
				}
			}
		}
	}

	object.X += dx
}

// resolveVertical moves object by dy and reports whether it was stopped by
// something underneath.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64) bool {
	if dy == 0 {
		return false
	}

	landed := false
	if check := object.Check(0, dy, physics.Blockers...); check != nil {
		for _, o := range blockersIn(check, physics.Blockers) {
			if object.X+object.W <= o.X+contactEpsilon || object.X >= o.X+o.W-contactEpsilon {
				continue
			}
			if dy > 0 && o.Y >= object.Y+object.H-contactEpsilon {
				if gap := o.Y - (object.Y + object.H); gap < dy {
					dy = math.Max(gap, 0)
					landed = true
				}
			} else if dy < 0 && o.Y+o.H <= object.Y+contactEpsilon {
				if gap := object.Y - (o.Y + o.H); -gap > dy {
					dy = -math.Max(gap, 0)
				}
				physics.SpeedY = 0
			}
		}
	}

	object.Y += dy
	if landed {
		physics.SpeedY = 0
	}
	return landed
}

func blockersIn(check *resolv.Collision, blockers []string) []*resolv.Object {
	var out []*resolv.Object
	for _, o := range check.Objects {
		for _, tag := range blockers {
			if o.HasTags(tag) {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
