package systems

import (
	"log"

	"github.com/automoto/robofighter/collision"
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves open strikes and grab reaches against the bodies in
// front of each attacker.
func UpdateCombat(ecs *ecs.ECS) {
	gw := gatewayOf(ecs)
	if gw == nil {
		return
	}

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		switch {
		case player.Attacking && components.Strike.Get(playerEntry).Active:
			resolvePlayerStrike(ecs, gw, playerEntry)
		case player.Grabbing && player.Reaching && len(player.Held) == 0:
			resolveGrab(ecs, gw, playerEntry)
		}
	})

	tags.Grunt.Each(ecs.World, func(gruntEntry *donburi.Entry) {
		grunt := components.Grunt.Get(gruntEntry)
		if !grunt.Attacking || grunt.Grabbed || grunt.Hit || !components.Strike.Get(gruntEntry).Active {
			return
		}
		resolveGruntStrike(ecs, gw, gruntEntry)
	})
}

func resolvePlayerStrike(ecs *ecs.ECS, gw collision.Gateway, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	strike := components.Strike.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	region := obj.Box().Ahead(player.Tuning.AttackReach, player.FacingRight)

	for _, target := range entriesIn(gw.Overlapping(region, tags.ResolvGrunt)) {
		if !target.HasComponent(tags.Grunt) || strike.Struck(target.Entity()) {
			continue
		}
		if !components.Grunt.Get(target).Hittable() {
			continue
		}

		kb := player.CurrentMove.Knockback()
		kx, ky := gamemath.KnockbackFor(obj.CenterX(), components.Object.Get(target).CenterX(), kb.X, kb.Y)

		strike.Mark(target.Entity())
		HitGrunt(ecs, target, kx, ky)
		player.HitObject = true

		HitLandedEvent.Publish(ecs.World, HitLanded{
			Attacker:   playerEntry.Entity(),
			Defender:   target.Entity(),
			KnockbackX: kx,
			KnockbackY: ky,
		})
	}
}

func resolveGrab(ecs *ecs.ECS, gw collision.Gateway, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	region := components.Object.Get(playerEntry).Box().Ahead(player.Tuning.GrabReach, player.FacingRight)

	for _, target := range entriesIn(gw.Overlapping(region, tags.ResolvGrunt)) {
		if !target.HasComponent(tags.Grunt) {
			continue
		}
		grunt := components.Grunt.Get(target)
		if grunt.Grabbed || !grunt.ColliderEnabled {
			continue
		}

		GrabGrunt(ecs, target, playerEntry)
		player.Held = append(player.Held, target)
		NotifyReachAnimationFinished(playerEntry)
		placeHeld(playerEntry, target)

		if cfg.Sim.Debug {
			log.Printf("[player] grabbed %v", target.Entity())
		}
		GrabStartedEvent.Publish(ecs.World, GrabStarted{Holder: playerEntry.Entity(), Held: target.Entity()})
		return
	}
}

func resolveGruntStrike(ecs *ecs.ECS, gw collision.Gateway, gruntEntry *donburi.Entry) {
	grunt := components.Grunt.Get(gruntEntry)
	strike := components.Strike.Get(gruntEntry)
	obj := components.Object.Get(gruntEntry)
	region := obj.Box().Ahead(grunt.Tuning.AttackReach, grunt.FacingRight)

	for _, target := range entriesIn(gw.Overlapping(region, tags.ResolvPlayer)) {
		if !target.HasComponent(tags.Player) || strike.Struck(target.Entity()) {
			continue
		}
		player := components.Player.Get(target)
		if player.Hit {
			continue
		}

		attackerX := obj.CenterX()
		defenderX := components.Object.Get(target).CenterX()
		kb := grunt.Attack.Knockback()
		kx, ky := gamemath.KnockbackFor(attackerX, defenderX, kb.X, kb.Y)

		strike.Mark(target.Entity())
		HitPlayer(ecs, target, kx, ky)
		// Face away from the attacker.
		player.FacingRight = attackerX < defenderX

		HitLandedEvent.Publish(ecs.World, HitLanded{
			Attacker:   gruntEntry.Entity(),
			Defender:   target.Entity(),
			KnockbackX: kx,
			KnockbackY: ky,
			OnPlayer:   true,
		})
	}
}

// entriesIn maps resolv objects back to the entries that own them.
func entriesIn(objs []*resolv.Object) []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(objs))
	for _, o := range objs {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
