package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/stretchr/testify/assert"
)

func (a *testArena) attachBot(d cfg.BotDifficulty) *components.BotData {
	a.player.AddComponent(components.Bot)
	components.Bot.SetValue(a.player, components.BotData{
		Difficulty: d,
		Input:      a.in,
		Rand:       rand.New(rand.NewSource(1)),
	})
	return components.Bot.Get(a.player)
}

func TestBotWalksTowardNearestGrunt(t *testing.T) {
	a := newTestArena(t, 100)
	a.grunt(t, 40, nil)
	near := a.grunt(t, 160, nil)
	bot := a.attachBot(cfg.BotDifficultyNormal)

	UpdateBots(a.ecs)

	assert.Equal(t, near.Entity(), bot.Target.Entity())
	assert.Equal(t, 1.0, a.in.Axis)
}

func TestBotTurnsBeforeActing(t *testing.T) {
	a := newTestArena(t, 100)
	a.grunt(t, 82, nil)
	bot := a.attachBot(cfg.BotDifficultyNormal)

	UpdateBots(a.ecs)

	assert.Equal(t, -1.0, a.in.Axis)
	assert.Zero(t, bot.DecisionTimer)
	assert.Equal(t, [cfg.ActionCount]bool{}, a.in.Current)
}

func TestBotDecidesInRange(t *testing.T) {
	a := newTestArena(t, 100)
	a.grunt(t, 118, nil)
	bot := a.attachBot(cfg.BotDifficultyNormal)

	UpdateBots(a.ecs)

	assert.Equal(t, 0.0, a.in.Axis)
	assert.Equal(t, cfg.Bot.Difficulties[cfg.BotDifficultyNormal].ReactionDelay, bot.DecisionTimer)
	assert.NotEqual(t, [cfg.ActionCount]bool{}, a.in.Current)

	// Nothing more until the reaction delay runs out.
	a.in.EndFrame()
	UpdateBots(a.ecs)
	assert.Equal(t, [cfg.ActionCount]bool{}, a.in.Current)
}

func TestBotIdlesWhileHit(t *testing.T) {
	a := newTestArena(t, 100)
	a.grunt(t, 300, nil)
	a.attachBot(cfg.BotDifficultyNormal)
	components.Player.Get(a.player).Hit = true
	a.in.SetAxis(1)

	UpdateBots(a.ecs)

	assert.Equal(t, 0.0, a.in.Axis)
}
