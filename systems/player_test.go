package systems

import (
	"testing"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// connectAndFinish simulates an attack that lands and plays out.
func (a *testArena) connectAndFinish(t *testing.T, connected bool) {
	t.Helper()
	a.in.Press(cfg.ActionAttack)
	a.step(1)
	p := components.Player.Get(a.player)
	require.True(t, p.Attacking)

	p.HitObject = connected
	NotifyAttackAnimationFinished(a.player)
	a.step(1)
	require.False(t, p.Attacking)
}

func TestTierCyclesOnConsecutiveHits(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	want := []string{"light1", "light2", "med", "heavy"}
	for i, name := range want {
		a.in.Press(cfg.ActionAttack)
		a.step(1)
		require.True(t, p.Attacking)
		assert.Equal(t, name, p.CurrentMove.Name(), "hit %d", i)

		p.HitObject = true
		NotifyAttackAnimationFinished(a.player)
		a.step(1)
		assert.Equal(t, (i+1)%4, p.Tier, "hit %d", i)
	}
	assert.Equal(t, 0, p.Tier)
}

func TestTierResetsOnMiss(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.connectAndFinish(t, true)
	a.connectAndFinish(t, true)
	require.Equal(t, 2, p.Tier)

	a.connectAndFinish(t, false)
	assert.Equal(t, 0, p.Tier)
}

func TestTierResetsAfterComboWindow(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.connectAndFinish(t, true)
	require.Equal(t, 1, p.Tier)
	assert.InDelta(t, cfg.Player.PunchBuffer, p.ComboTimer, 1e-9)

	a.step(ticks(cfg.Player.PunchBuffer) - 2)
	assert.Equal(t, 1, p.Tier, "window still open")

	a.step(3)
	assert.Equal(t, 0, p.Tier)
	assert.Zero(t, p.ComboTimer)
}

func TestComboWindowExpiresWhileHit(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.connectAndFinish(t, true)
	require.Equal(t, 1, p.Tier)

	HitPlayer(a.ecs, a.player, 0, 0)
	a.step(ticks(cfg.Player.PunchBuffer) + 1)
	assert.Equal(t, 0, p.Tier)

	a.step(ticks(cfg.Player.HitDuration))
	require.False(t, p.Hit)
	a.in.Press(cfg.ActionAttack)
	a.step(1)
	assert.Equal(t, "light1", p.CurrentMove.Name())
}

func TestComboWindowExpiresDuringGrab(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.connectAndFinish(t, true)
	require.Equal(t, 1, p.Tier)

	a.in.Press(cfg.ActionGrab)
	a.step(ticks(cfg.Player.PunchBuffer) + 1)
	require.True(t, p.Grabbing)
	assert.Equal(t, 0, p.Tier)

	NotifyReachAnimationFinished(a.player)
	a.step(1)
	NotifyRecoveryAnimationFinished(a.player)
	a.step(1)
	require.False(t, p.Grabbing)

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	assert.Equal(t, "light1", p.CurrentMove.Name())
}

func TestOutOfRangeKnockbackVariantIsIgnored(t *testing.T) {
	withDebug(t)
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	require.True(t, p.Attacking)

	assert.NotPanics(t, func() { NotifyKnockbackVariant(a.player, 5) })
	assert.NotPanics(t, func() { NotifyKnockbackVariant(a.player, -1) })
	assert.Equal(t, 0, p.CurrentMove.Variant())
}

func TestAttackFinishResetsKnockbackVariant(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)
	p.Tier = 3

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	require.Equal(t, "heavy", p.CurrentMove.Name())

	NotifyKnockbackVariant(a.player, 1)
	assert.Equal(t, 1, p.CurrentMove.Variant())

	NotifyAttackAnimationFinished(a.player)
	a.step(1)
	assert.Equal(t, 0, p.CurrentMove.Variant())
}

func TestGroundedAttackStopsMovement(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)

	a.in.SetAxis(1)
	a.step(1)
	assert.Equal(t, cfg.Player.RunSpeed, components.Physics.Get(a.player).SpeedX)

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	assert.Equal(t, 0.0, components.Physics.Get(a.player).SpeedX)
	assert.Equal(t, cfg.PlayerAttack, components.Player.Get(a.player).State)

	// Movement input is ignored until the attack ends.
	a.step(3)
	assert.Equal(t, 0.0, components.Physics.Get(a.player).SpeedX)
}

func TestJumpOnlyFromGround(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)

	a.in.Press(cfg.ActionJump)
	a.step(1)
	physics := components.Physics.Get(a.player)
	assert.Less(t, physics.SpeedY, 0.0)
	obj := components.Object.Get(a.player)
	assert.Less(t, obj.Y+obj.H, floorY)

	a.step(2)
	vy := physics.SpeedY
	a.in.Press(cfg.ActionJump)
	a.step(1)
	assert.Greater(t, physics.SpeedY, vy, "no second jump in the air")
}

func TestAirAttackCancelledOnLanding(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.in.Press(cfg.ActionJump)
	a.step(3)
	a.in.Press(cfg.ActionAttack)
	a.step(1)
	require.True(t, p.Attacking)
	require.True(t, p.CurrentMove.AirOnly())

	a.step(120)
	assert.False(t, p.Attacking)
	assert.False(t, runnerOf(a.player).IsRunning())
}

func TestHitPlayerIgnoredWhileAlreadyHit(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	HitPlayer(a.ecs, a.player, -150, -120)
	require.True(t, p.Hit)
	physics := components.Physics.Get(a.player)
	assert.Equal(t, -150.0, physics.SpeedX)
	assert.Equal(t, -120.0, physics.SpeedY)

	HitPlayer(a.ecs, a.player, 300, -300)
	assert.Equal(t, -150.0, physics.SpeedX)

	a.step(ticks(cfg.Player.HitDuration) + 1)
	assert.False(t, p.Hit)
}

func TestGrabThrowRoundTrip(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	a.step(1)
	p := components.Player.Get(a.player)

	var ended []GrabEnded
	GrabEndedEvent.Subscribe(a.ecs.World, func(w donburi.World, e GrabEnded) {
		ended = append(ended, e)
	})

	a.in.Press(cfg.ActionGrab)
	a.step(1)
	require.Len(t, p.Held, 1)
	grunt := components.Grunt.Get(g)
	assert.True(t, grunt.Grabbed)
	assert.True(t, components.Physics.Get(g).Kinematic)
	assert.False(t, p.Reaching, "a catch ends the reach")

	a.step(1)
	assert.InDelta(t, centerX(a.player)+cfg.Player.HoldOffset.X, centerX(g), 1e-9)
	require.True(t, p.RecoveringGrab)

	NotifyRecoveryAnimationFinished(a.player)
	a.step(1)
	assert.Equal(t, seqGrabHold, runnerOf(a.player).Name())

	a.in.SetAxis(-1)
	a.in.Press(cfg.ActionGrab)
	a.step(1)

	assert.Empty(t, p.Held)
	assert.True(t, p.Throwing)
	assert.False(t, grunt.Grabbed)
	assert.Equal(t, cfg.GruntReleased, components.State.Get(g).CurrentState)
	require.Len(t, ended, 1)
	assert.True(t, ended[0].Thrown)
	assert.Equal(t, -cfg.Player.ThrowSpeed.X, ended[0].VelX)
	assert.Equal(t, cfg.Player.ThrowSpeed.Y, ended[0].VelY)

	NotifyThrowAnimationFinished(a.player)
	assert.False(t, p.Throwing)
}

func TestGrabHoldAutoReleases(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	a.step(1)
	p := components.Player.Get(a.player)

	a.in.Press(cfg.ActionGrab)
	a.step(2)
	require.Len(t, p.Held, 1)

	NotifyRecoveryAnimationFinished(a.player)
	a.step(ticks(cfg.Player.GrabHoldDuration) + 2)

	assert.Empty(t, p.Held)
	assert.False(t, p.Grabbing)
	assert.False(t, components.Grunt.Get(g).Grabbed)
	vx := components.Physics.Get(g).SpeedX
	assert.True(t, vx == cfg.Player.ReleaseSpeed.X || vx == 0, "released forward, got %v", vx)
}

func TestWhiffedGrabRecovers(t *testing.T) {
	a := newTestArena(t, 100)
	a.step(1)
	p := components.Player.Get(a.player)

	a.in.Press(cfg.ActionGrab)
	a.step(1)
	require.True(t, p.Reaching)
	assert.Equal(t, cfg.PlayerGrabReach, p.State)

	NotifyReachAnimationFinished(a.player)
	a.step(1)
	assert.True(t, p.RecoveringGrab)

	NotifyRecoveryAnimationFinished(a.player)
	a.step(1)
	assert.False(t, p.Grabbing)

	a.step(1)
	assert.Equal(t, cfg.PlayerIdle, p.State)
}

func TestHitWhileHoldingReleasesCaptive(t *testing.T) {
	a := newTestArena(t, 100)
	g := a.grunt(t, 118, nil)
	a.step(1)
	p := components.Player.Get(a.player)

	a.in.Press(cfg.ActionGrab)
	a.step(1)
	require.Len(t, p.Held, 1)

	HitPlayer(a.ecs, a.player, -100, -100)

	assert.Empty(t, p.Held)
	assert.False(t, p.Grabbing)
	assert.False(t, components.Grunt.Get(g).Grabbed)
	assert.Equal(t, cfg.Player.ReleaseSpeed.X, components.Physics.Get(g).SpeedX)
}

func TestClipClockDrivesAttackToCompletion(t *testing.T) {
	a := newTestArena(t, 100)
	a.clips = true
	a.step(1)
	p := components.Player.Get(a.player)
	p.Tier = 3

	a.in.Press(cfg.ActionAttack)
	a.step(1)
	require.True(t, p.Attacking)

	a.step(ticks(0.2) + 1)
	assert.Equal(t, 1, p.CurrentMove.Variant(), "heavy switches to its second variant mid-clip")

	a.step(ticks(cfg.Clips.Lengths["heavy"]))
	assert.False(t, p.Attacking)
}
