package systems

import (
	"testing"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func collectHits(a *testArena) *[]HitLanded {
	var hits []HitLanded
	HitLandedEvent.Subscribe(a.ecs.World, func(w donburi.World, e HitLanded) {
		hits = append(hits, e)
	})
	return &hits
}

func TestPlayerStrikeKnocksGruntAway(t *testing.T) {
	tests := []struct {
		name        string
		gruntX      float64
		facingRight bool
		wantX       float64
	}{
		{name: "grunt on the right", gruntX: 118, facingRight: true, wantX: 80},
		{name: "grunt on the left", gruntX: 82, facingRight: false, wantX: -80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t, 100)
			g := a.grunt(t, tt.gruntX, nil)
			hits := collectHits(a)
			a.step(1)
			components.Player.Get(a.player).FacingRight = tt.facingRight

			a.in.Press(cfg.ActionAttack)
			a.step(1)

			physics := components.Physics.Get(g)
			assert.Equal(t, tt.wantX, physics.SpeedX)
			assert.Equal(t, -40.0, physics.SpeedY)
			assert.Equal(t, cfg.GruntHit, components.State.Get(g).CurrentState)
			assert.Equal(t, 2, components.Health.Get(g).Current)
			assert.True(t, components.Player.Get(a.player).HitObject)

			require.Len(t, *hits, 1)
			hit := (*hits)[0]
			assert.Equal(t, a.player.Entity(), hit.Attacker)
			assert.Equal(t, g.Entity(), hit.Defender)
			assert.False(t, hit.OnPlayer)
		})
	}
}

func TestPlayerStrikeMissesBehind(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 82, nil)
	hits := collectHits(a)
	a.step(1)

	a.in.Press(cfg.ActionAttack)
	a.step(1)

	assert.Empty(t, *hits)
	assert.False(t, components.Grunt.Get(g).Hit)
	assert.False(t, components.Player.Get(a.player).HitObject)
}

func TestStrikeLandsOncePerSwing(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	hits := collectHits(a)
	a.step(1)

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	require.Len(t, *hits, 1)

	// Even once the grunt is hittable again, the same swing does not land twice.
	components.Grunt.Get(g).CanTakeHit = true
	UpdateCombat(a.ecs)
	ProcessEvents(a.ecs)
	assert.Len(t, *hits, 1)

	components.Strike.Get(a.player).Open()
	UpdateCombat(a.ecs)
	ProcessEvents(a.ecs)
	assert.Len(t, *hits, 2)
	assert.Equal(t, 1, components.Health.Get(g).Current)
}

func TestInvincibleGruntIgnoresStrikes(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	hits := collectHits(a)
	a.step(1)

	HitGrunt(a.ecs, g, 0, 0)
	require.False(t, components.Grunt.Get(g).Hittable())

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	assert.Empty(t, *hits)
	assert.Equal(t, 2, components.Health.Get(g).Current)
}

func TestGruntStrikeKnocksPlayerBack(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	hits := collectHits(a)

	grunt := components.Grunt.Get(g)
	require.False(t, grunt.FacingRight)
	grunt.Attacking = true
	components.Strike.Get(g).Open()

	UpdateCombat(a.ecs)
	ProcessEvents(a.ecs)

	p := components.Player.Get(a.player)
	physics := components.Physics.Get(a.player)
	assert.True(t, p.Hit)
	assert.Equal(t, -150.0, physics.SpeedX)
	assert.Equal(t, -120.0, physics.SpeedY)
	assert.False(t, p.FacingRight, "faces away from the attacker")

	require.Len(t, *hits, 1)
	assert.True(t, (*hits)[0].OnPlayer)
	assert.Equal(t, g.Entity(), (*hits)[0].Attacker)
}

func TestGrabTakesFirstFreeGrunt(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	var started []GrabStarted
	GrabStartedEvent.Subscribe(a.ecs.World, func(w donburi.World, e GrabStarted) {
		started = append(started, e)
	})
	a.step(1)

	a.in.Press(cfg.ActionGrab)
	a.step(1)

	require.Len(t, started, 1)
	assert.Equal(t, g.Entity(), started[0].Held)
	grunt := components.Grunt.Get(g)
	assert.True(t, grunt.Grabbed)
	assert.False(t, grunt.ColliderEnabled)
	require.NotNil(t, grunt.Holder)
	assert.Equal(t, a.player.Entity(), grunt.Holder.Entity())
	assert.Equal(t, cfg.GruntGrabbed, components.State.Get(g).CurrentState)
}

func TestGrabSkipsGruntWithoutCollider(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	a.step(1)
	components.Grunt.Get(g).ColliderEnabled = false

	a.in.Press(cfg.ActionGrab)
	a.step(1)

	assert.Empty(t, components.Player.Get(a.player).Held)
	assert.False(t, components.Grunt.Get(g).Grabbed)
	assert.True(t, components.Player.Get(a.player).Reaching)
}
