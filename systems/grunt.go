package systems

import (
	"log"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sequence names, visible through Runner.Name for debugging and tests.
const (
	seqThinking = "thinking"
	seqApproach = "approach"
	seqAttack   = "attack"
	seqHit      = "hit"
	seqReleased = "released"
)

// UpdateGrunts runs each grunt's state logic. Grunts whose health ran out are
// destroyed after the pass.
func UpdateGrunts(ecs *ecs.ECS) {
	opponent, _ := tags.Player.First(ecs.World)
	dt := cfg.Sim.DeltaTime()

	var dead []*donburi.Entry
	tags.Grunt.Each(ecs.World, func(e *donburi.Entry) {
		if updateGrunt(ecs, e, opponent, dt) {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		destroyGrunt(ecs, e)
	}
}

// updateGrunt reports whether the grunt died this tick.
func updateGrunt(ecs *ecs.ECS, e *donburi.Entry, opponent *donburi.Entry, dt float64) bool {
	grunt := components.Grunt.Get(e)
	if grunt.Grabbed {
		return false
	}

	state := components.State.Get(e)
	state.StateTime += dt

	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	var opp *components.ObjectData
	if opponent != nil && opponent.Valid() {
		opp = components.Object.Get(opponent)
		grunt.FacingRight = gamemath.FacingFor(obj.CenterX(), opp.CenterX(), grunt.Tuning.FacingDeadzone, grunt.FacingRight)
	}

	if !physics.Grounded || grunt.Hit {
		return false
	}
	if components.Health.Get(e).Current <= 0 {
		return true
	}
	if opp == nil {
		physics.SpeedX = 0
		return false
	}

	runner := runnerOf(e)
	switch state.CurrentState {
	case cfg.GruntThinking:
		if !runner.IsRunning() {
			startThinking(ecs, e)
		}
	case cfg.GruntApproach:
		if !runner.IsRunning() {
			startApproach(e)
		}
		moveToStandoff(e, opp.CenterX(), dt)
	case cfg.GruntAttack:
		gruntAttack(ecs, e)
	case cfg.GruntBackAway:
		grunt.Attacking = false
		components.Strike.Get(e).Close()
		grunt.Attack.Reset()
		moveToStandoff(e, opp.CenterX(), dt)
	}
	return false
}

func startThinking(ecs *ecs.ECS, e *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	runnerOf(e).Start(seqThinking,
		sequence.Do(func() {
			physics := components.Physics.Get(e)
			physics.SpeedX, physics.SpeedY = 0, 0
		}),
		sequence.Wait(grunt.Tuning.ThinkDuration),
		sequence.Do(func() {
			if randomOf(ecs).Intn(2) == 0 {
				setGruntState(e, cfg.GruntApproach)
			} else {
				setGruntState(e, cfg.GruntAttack)
			}
		}),
	)
}

func startApproach(e *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	runnerOf(e).Start(seqApproach,
		sequence.Wait(grunt.Tuning.ApproachDuration),
		sequence.Do(func() { setGruntState(e, cfg.GruntAttack) }),
	)
}

// moveToStandoff walks toward the spot minDistanceFromPlayer away from the
// opponent on the grunt's side. Moving against the facing uses the slower
// back-away speed. Reaching the spot from BACKAWAY ends the back-away.
func moveToStandoff(e *donburi.Entry, opponentX, dt float64) {
	grunt := components.Grunt.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	t := grunt.Tuning

	x := obj.CenterX()
	target := gamemath.StandoffTarget(opponentX, t.MinDistanceFromPlayer, grunt.FacingRight)
	dir := gamemath.Sign(target - x)

	speed := t.RunSpeed
	if (grunt.FacingRight && dir < 0) || (!grunt.FacingRight && dir > 0) {
		speed = t.BackAwaySpeed
	}

	vx, snap := gamemath.Approach(x, target, speed, dt, t.SnapEpsilon)
	if !snap {
		physics.SpeedX = vx
		return
	}

	physics.SpeedX, physics.SpeedY = 0, 0
	obj.X = target - obj.W/2
	obj.Update()
	if components.State.Get(e).CurrentState == cfg.GruntBackAway {
		setGruntState(e, cfg.GruntThinking)
	}
}

// gruntAttack closes in until the front probe touches the opponent, then
// plants and swings.
func gruntAttack(ecs *ecs.ECS, e *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	physics := components.Physics.Get(e)

	if !grunt.Attacking {
		if !grunt.InFrontOfPlayer {
			physics.SpeedX = grunt.Tuning.RunSpeed
			if !grunt.FacingRight {
				physics.SpeedX = -grunt.Tuning.RunSpeed
			}
			return
		}
		physics.SpeedX = 0
		grunt.Attacking = true
	}

	if runner := runnerOf(e); !runner.IsRunning() {
		startAttack(ecs, e)
	}
}

// startAttack rolls 1..MaxAttackCount swings. More than two swings means two
// jabs and an uppercut on the heavy knockback variant.
func startAttack(ecs *ecs.ECS, e *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	t := grunt.Tuning

	count := 1 + randomOf(ecs).Intn(t.MaxAttackCount)
	grunt.AttackCount = count

	swing := func(variant int, d float64) []sequence.Step {
		return []sequence.Step{
			sequence.Do(func() {
				g := components.Grunt.Get(e)
				g.Attack.Select(variant)
				components.Strike.Get(e).Open()
			}),
			sequence.Wait(d),
		}
	}

	var steps []sequence.Step
	if count > 2 {
		steps = append(steps, swing(0, t.JabDuration)...)
		steps = append(steps, swing(0, t.JabDuration)...)
		steps = append(steps, swing(1, t.UppercutDuration)...)
	} else {
		for i := 0; i < count; i++ {
			steps = append(steps, swing(0, t.JabDuration)...)
		}
	}
	steps = append(steps, sequence.Do(func() {
		components.Strike.Get(e).Close()
		setGruntState(e, cfg.GruntBackAway)
	}))

	runnerOf(e).Start(seqAttack, steps...)
}

// resetGruntFlags clears every combat flag ahead of a preempting state.
func resetGruntFlags(grunt *components.GruntData) {
	grunt.Grabbed = false
	grunt.Hit = false
	grunt.Attacking = false
	grunt.Recovering = false
	grunt.CanTakeHit = false
}

// HitGrunt preempts whatever the grunt is doing: knockback is applied now,
// health drops by one and the hit sequence takes over the runner.
func HitGrunt(ecs *ecs.ECS, e *donburi.Entry, knockbackX, knockbackY float64) {
	grunt := components.Grunt.Get(e)
	if grunt.Grabbed {
		contractViolation("[grunt] %v: hit while grabbed", e.Entity())
		return
	}

	resetGruntFlags(grunt)
	grunt.Hit = true
	grunt.Attack.Reset()
	components.Strike.Get(e).Close()
	components.Health.Get(e).Current--
	setGruntState(e, cfg.GruntHit)

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = knockbackX, knockbackY

	t := grunt.Tuning
	runnerOf(e).Start(seqHit,
		sequence.Wait(t.InvincibilityDuration),
		sequence.Do(func() { components.Grunt.Get(e).CanTakeHit = true }),
		sequence.Until(func() bool { return components.Physics.Get(e).Grounded }),
		sequence.Do(func() {
			g := components.Grunt.Get(e)
			g.Hit = false
			p := components.Physics.Get(e)
			p.SpeedX, p.SpeedY = 0, 0
			g.Recovering = true
			setGruntState(e, cfg.GruntRecover)
		}),
		sequence.Wait(t.RecoverDuration),
		sequence.Do(func() {
			components.Grunt.Get(e).Recovering = false
			setGruntState(e, cfg.GruntThinking)
		}),
	)
}

// GrabGrunt hands the grunt to holder: it stops integrating physics, loses its
// collider and drops any running sequence.
func GrabGrunt(ecs *ecs.ECS, e *donburi.Entry, holder *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	resetGruntFlags(grunt)
	grunt.Grabbed = true
	grunt.Holder = holder
	grunt.ColliderEnabled = false
	grunt.Attack.Reset()
	components.Strike.Get(e).Close()

	physics := components.Physics.Get(e)
	physics.Kinematic = true
	physics.SpeedX, physics.SpeedY = 0, 0

	setGruntState(e, cfg.GruntGrabbed)
	runnerOf(e).Stop()
}

// ReleaseGrunt severs the grab and launches the grunt. Its collider comes back
// after the release grace delay.
func ReleaseGrunt(ecs *ecs.ECS, e *donburi.Entry, velX, velY float64) {
	grunt := components.Grunt.Get(e)
	if !grunt.Grabbed {
		contractViolation("[grunt] %v: released while not grabbed", e.Entity())
		return
	}
	grunt.Grabbed = false
	grunt.Holder = nil
	grunt.CanTakeHit = true

	physics := components.Physics.Get(e)
	physics.Kinematic = false
	physics.SpeedX, physics.SpeedY = velX, velY

	setGruntState(e, cfg.GruntReleased)
	runnerOf(e).Start(seqReleased,
		sequence.Wait(grunt.Tuning.ReleaseGrace),
		sequence.Do(func() { components.Grunt.Get(e).ColliderEnabled = true }),
	)
}

// onGruntGroundContact ends a throw arc.
func onGruntGroundContact(e *donburi.Entry) {
	if components.State.Get(e).CurrentState != cfg.GruntReleased {
		return
	}
	components.Physics.Get(e).SpeedX = 0
	setGruntState(e, cfg.GruntThinking)
}

// destroyGrunt removes a dead grunt and asks the level for a replacement at its
// original spawn point.
func destroyGrunt(ecs *ecs.ECS, e *donburi.Entry) {
	grunt := components.Grunt.Get(e)
	health := components.Health.Get(e)
	runnerOf(e).Stop()

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}

	if cfg.Sim.Debug {
		log.Printf("[grunt] %v: destroyed, respawn at (%.0f, %.0f)", e.Entity(), grunt.SpawnX, grunt.SpawnY)
	}
	GruntDiedEvent.Publish(ecs.World, GruntDied{Grunt: e.Entity(), SpawnX: grunt.SpawnX, SpawnY: grunt.SpawnY})
	RespawnRequested.Publish(ecs.World, RespawnRequest{X: grunt.SpawnX, Y: grunt.SpawnY, Health: health.Max})

	ecs.World.Remove(e.Entity())
}

func randomOf(ecs *ecs.ECS) *components.RandomData {
	entry, ok := components.Random.First(ecs.World)
	if !ok {
		panic("systems: world has no random source")
	}
	return components.Random.Get(entry)
}
