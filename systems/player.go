package systems

import (
	"log"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	seqPlayerAttack = "attack"
	seqGrab         = "grab"
	seqGrabHold     = "grab-hold"
	seqPlayerHit    = "hit"
)

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	src := components.PlayerInput.Get(playerEntry).Source

	tickComboWindow(player, cfg.Sim.DeltaTime())

	// Air moves end on touchdown. Otherwise a released jump is cut short.
	if player.Attacking && player.CurrentMove != nil && player.CurrentMove.AirOnly() {
		if physics.Grounded {
			runnerOf(playerEntry).Stop()
			endAttack(playerEntry, player)
		} else if physics.SpeedY < 0 && -physics.SpeedY < player.Tuning.JumpSpeed-player.Tuning.MinJumpHeightOffset {
			physics.SpeedY = 0
		}
	}

	if !player.Hit && src != nil {
		held := len(player.Held)
		if !player.Attacking && !player.Throwing && (!player.Grabbing || held > 0 || !physics.Grounded) {
			handleMovementInput(src, player, physics)
		}
		if !player.Grabbing && !player.Throwing {
			handleAttackInput(ecs, src, playerEntry, player, physics)
		}
		if !player.Attacking {
			handleGrabInput(ecs, src, playerEntry, player, physics)
		}
	}

	player.State = derivePlayerState(player, physics)

	if f, ok := src.(input.Framer); ok {
		f.EndFrame()
	}
}

func handleMovementInput(src input.Source, player *components.PlayerData, physics *components.PhysicsData) {
	if !(player.Grabbing && !physics.Grounded) {
		axis := src.GetAxis(cfg.AxisHorizontal)
		switch {
		case axis > 0:
			player.FacingRight = true
			if !player.Grabbing {
				physics.SpeedX = player.Tuning.RunSpeed
			}
		case axis < 0:
			player.FacingRight = false
			if !player.Grabbing {
				physics.SpeedX = -player.Tuning.RunSpeed
			}
		default:
			physics.SpeedX = 0
		}
	}

	if physics.Grounded && src.IsButtonDown(cfg.ActionJump.Name()) {
		physics.SpeedY = -player.Tuning.JumpSpeed
	}
}

func handleAttackInput(ecs *ecs.ECS, src input.Source, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData) {
	if player.Attacking || !src.IsButtonDown(cfg.ActionAttack.Name()) {
		return
	}

	runner := runnerOf(playerEntry)
	runner.Stop()

	player.Attacking = true
	player.ComboTimer = 0
	player.HitObject = false
	player.AttackClipEnded = false

	if physics.Grounded {
		physics.SpeedX = 0
		player.CurrentMove = player.Moves.Tier(player.Tier)
	} else {
		player.CurrentMove = player.Moves.Air()
	}
	player.CurrentMove.Reset()
	components.Strike.Get(playerEntry).Open()

	runner.Start(seqPlayerAttack,
		sequence.Until(func() bool { return components.Player.Get(playerEntry).AttackClipEnded }),
		sequence.Do(func() { finishAttack(playerEntry) }),
	)
}

// finishAttack runs once the attack clip ends. A grounded hit advances the
// combo tier and opens a window of PunchBuffer seconds for the next attack;
// anything else resets the tier.
func finishAttack(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	connected := player.HitObject
	endAttack(playerEntry, player)

	if !components.Physics.Get(playerEntry).Grounded || !connected {
		player.Tier = 0
		player.ComboTimer = 0
		return
	}

	player.Tier = (player.Tier + 1) % player.Moves.Tiers()
	player.ComboTimer = player.Tuning.PunchBuffer
}

// tickComboWindow counts the combo window down and resets the tier when it
// closes.
func tickComboWindow(player *components.PlayerData, dt float64) {
	if player.ComboTimer <= 0 {
		return
	}
	player.ComboTimer -= dt
	if player.ComboTimer <= 0 {
		player.ComboTimer = 0
		player.Tier = 0
	}
}

func endAttack(playerEntry *donburi.Entry, player *components.PlayerData) {
	player.Attacking = false
	player.AttackClipEnded = false
	if player.CurrentMove != nil {
		player.CurrentMove.Reset()
	}
	components.Strike.Get(playerEntry).Close()
}

func handleGrabInput(ecs *ecs.ECS, src input.Source, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData) {
	if src.IsButtonDown(cfg.ActionGrab.Name()) {
		switch {
		case !player.Grabbing && len(player.Held) == 0:
			startGrab(ecs, playerEntry, player)
		case !player.Throwing && len(player.Held) > 0 && !player.RecoveringGrab:
			runnerOf(playerEntry).Stop()
			player.Grabbing = false
			player.Throwing = true
			ReleaseHeld(ecs, playerEntry)
		}
	}

	if player.Grabbing && physics.Grounded {
		physics.SpeedX = 0
	}
}

// startGrab reaches until the reach clip ends, then recovers. With a captive
// in hand the recovery is followed by a hold of GrabHoldDuration, after which
// everything held is let go.
func startGrab(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData) {
	player.Grabbing = true
	player.Reaching = true
	player.RecoveringGrab = false

	runnerOf(playerEntry).Start(seqGrab,
		sequence.Until(func() bool { return !components.Player.Get(playerEntry).Reaching }),
		sequence.Do(func() { components.Player.Get(playerEntry).RecoveringGrab = true }),
		sequence.Until(func() bool { return !components.Player.Get(playerEntry).RecoveringGrab }),
		sequence.Do(func() {
			p := components.Player.Get(playerEntry)
			if len(p.Held) == 0 {
				p.Grabbing = false
				return
			}
			runnerOf(playerEntry).Start(seqGrabHold,
				sequence.Wait(p.Tuning.GrabHoldDuration),
				sequence.Do(func() { ReleaseHeld(ecs, playerEntry) }),
				sequence.Do(func() { components.Player.Get(playerEntry).Grabbing = false }),
			)
		}),
	)
}

// HitPlayer knocks the player back unless a hit is already in progress. Any
// grunts in hand are let go first.
func HitPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, knockbackX, knockbackY float64) {
	player := components.Player.Get(playerEntry)
	if player.Hit {
		return
	}

	if len(player.Held) > 0 {
		ReleaseHeld(ecs, playerEntry)
	}

	player.Hit = true
	player.Attacking = false
	player.AttackClipEnded = false
	player.Grabbing = false
	player.Reaching = false
	player.RecoveringGrab = false
	player.Throwing = false
	if player.CurrentMove != nil {
		player.CurrentMove.Reset()
	}
	components.Strike.Get(playerEntry).Close()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = knockbackX, knockbackY

	runnerOf(playerEntry).Start(seqPlayerHit,
		sequence.Wait(player.Tuning.HitDuration),
		sequence.Do(func() { components.Player.Get(playerEntry).Hit = false }),
	)
}

// ReleaseHeld lets go of every held grunt. Throwing uses ThrowSpeed, anything
// else ReleaseSpeed; both are mirrored when facing left.
func ReleaseHeld(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	speed := player.Tuning.ReleaseSpeed
	if player.Throwing {
		speed = player.Tuning.ThrowSpeed
	}
	v := gamemath.MirrorX(speed, player.FacingRight)

	for _, held := range player.Held {
		if held == nil || !held.Valid() {
			continue
		}
		ReleaseGrunt(ecs, held, v.X, v.Y)
		GrabEndedEvent.Publish(ecs.World, GrabEnded{
			Holder: playerEntry.Entity(),
			Held:   held.Entity(),
			VelX:   v.X,
			VelY:   v.Y,
			Thrown: player.Throwing,
		})
	}
	if cfg.Sim.Debug && len(player.Held) > 0 {
		log.Printf("[player] released %d held, velocity (%.0f, %.0f)", len(player.Held), v.X, v.Y)
	}
	player.Held = player.Held[:0]
}

// onPlayerLanded stops the slide of a knocked-back player.
func onPlayerLanded(playerEntry *donburi.Entry) {
	if components.Player.Get(playerEntry).Hit {
		components.Physics.Get(playerEntry).SpeedX = 0
	}
}

// NotifyAttackAnimationFinished ends the running attack.
func NotifyAttackAnimationFinished(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.Attacking {
		player.AttackClipEnded = true
	}
}

// NotifyReachAnimationFinished ends the reach phase of a grab.
func NotifyReachAnimationFinished(playerEntry *donburi.Entry) {
	components.Player.Get(playerEntry).Reaching = false
}

// NotifyRecoveryAnimationFinished ends the recovery phase of a grab.
func NotifyRecoveryAnimationFinished(playerEntry *donburi.Entry) {
	components.Player.Get(playerEntry).RecoveringGrab = false
}

// NotifyThrowAnimationFinished ends the throw.
func NotifyThrowAnimationFinished(playerEntry *donburi.Entry) {
	components.Player.Get(playerEntry).Throwing = false
}

// NotifyKnockbackVariant switches the running move to knockback variant i.
// Indices the move does not declare are ignored.
func NotifyKnockbackVariant(playerEntry *donburi.Entry, i int) {
	player := components.Player.Get(playerEntry)
	if !player.Attacking || player.CurrentMove == nil {
		return
	}
	if !player.CurrentMove.Select(i) && cfg.Sim.Debug {
		log.Printf("[player] move %q has no knockback variant %d, ignored", player.CurrentMove.Name(), i)
	}
}
