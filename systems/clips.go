package systems

import (
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// defaultClipLength is used for clips missing from the clip table.
const defaultClipLength = 0.25

// UpdateClips stands in for the animation layer. It plays the clip matching
// the player's flags, fires knockback cues and reports clip completion
// through the Notify callbacks.
func UpdateClips(ecs *ecs.ECS) {
	dt := cfg.Sim.DeltaTime()

	components.Clip.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Player) {
			return
		}
		clip := components.Clip.Get(e)
		name, finished := playerClip(components.Player.Get(e))
		if name == "" {
			clip.Clear()
			return
		}

		clip.Play(name, cfg.Clips.Length(name, defaultClipLength))
		clip.Elapsed += dt

		cues := cfg.Clips.Cues[name]
		for clip.NextCue < len(cues) && cues[clip.NextCue].At <= clip.Elapsed {
			NotifyKnockbackVariant(e, cues[clip.NextCue].Variant)
			clip.NextCue++
		}

		if !clip.Finished && clip.Elapsed >= clip.Length {
			clip.Finished = true
			finished(e)
		}
	})
}

// playerClip picks the clip for the player's current flags along with the
// callback to fire when it ends.
func playerClip(p *components.PlayerData) (string, func(*donburi.Entry)) {
	switch {
	case p.Attacking && p.CurrentMove != nil:
		return p.CurrentMove.Clip(), NotifyAttackAnimationFinished
	case p.Throwing:
		return cfg.ClipThrow, NotifyThrowAnimationFinished
	case p.Reaching:
		return cfg.ClipReach, NotifyReachAnimationFinished
	case p.RecoveringGrab:
		return cfg.ClipGrabRecover, NotifyRecoveryAnimationFinished
	}
	return "", nil
}
