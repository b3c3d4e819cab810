package systems

import (
	"math"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/gamemath"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// botThrowTicks is how long a bot holds a grunt before throwing it.
const botThrowTicks = 10

// UpdateBots generates input for bot-controlled players. Must run before
// UpdatePlayer so the input is seen on the same tick.
func UpdateBots(e *ecs.ECS) {
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBotAI(e, entry)
	})
}

func updateBotAI(e *ecs.ECS, botEntry *donburi.Entry) {
	bot := components.Bot.Get(botEntry)
	player := components.Player.Get(botEntry)
	obj := components.Object.Get(botEntry)
	in := bot.Input
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	}
	if player.Hit {
		in.SetAxis(0)
		return
	}

	// Throw whatever is held once it has been carried for a moment.
	if len(player.Held) > 0 {
		in.SetAxis(0)
		bot.HoldTicks++
		if bot.HoldTicks >= botThrowTicks && !player.RecoveringGrab {
			in.Press(cfg.ActionGrab)
			bot.HoldTicks = 0
		}
		return
	}
	bot.HoldTicks = 0

	botX := obj.CenterX()
	bot.Target = findNearestGrunt(e, botX)
	if bot.Target == nil {
		in.SetAxis(0)
		return
	}

	dx := components.Object.Get(bot.Target).CenterX() - botX
	if math.Abs(dx) > tuning.AttackRange {
		in.SetAxis(gamemath.Sign(dx))
		return
	}

	// Turn to face the target before doing anything else.
	if (dx > 0) != player.FacingRight && dx != 0 {
		in.SetAxis(gamemath.Sign(dx))
		return
	}
	in.SetAxis(0)

	if bot.DecisionTimer > 0 || player.Attacking || player.Grabbing {
		return
	}
	bot.DecisionTimer = tuning.ReactionDelay

	roll := bot.Rand.Float64()
	switch {
	case roll < tuning.GrabChance:
		in.Press(cfg.ActionGrab)
	case roll < tuning.GrabChance+tuning.JumpChance:
		in.Press(cfg.ActionJump)
	default:
		in.Press(cfg.ActionAttack)
	}
}

func findNearestGrunt(e *ecs.ECS, x float64) *donburi.Entry {
	var nearest *donburi.Entry
	best := math.MaxFloat64
	tags.Grunt.Each(e.World, func(entry *donburi.Entry) {
		if components.Grunt.Get(entry).Grabbed {
			return
		}
		if d := math.Abs(components.Object.Get(entry).CenterX() - x); d < best {
			best = d
			nearest = entry
		}
	})
	return nearest
}
