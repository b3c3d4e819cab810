package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/automoto/robofighter/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const floorY = 224.0

type testArena struct {
	ecs    *ecs.ECS
	in     *input.Virtual
	player *donburi.Entry
	clips  bool
}

// newTestArena builds a flat 640x240 arena with the player standing at
// playerX. The floor's top edge is floorY.
func newTestArena(t *testing.T, playerX float64) *testArena {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 240, 16, 16)
	factory.CreateRandom(e, rand.New(rand.NewSource(1)))
	factory.CreateWall(e, 0, floorY, 640, 16)

	a := &testArena{ecs: e, in: &input.Virtual{}}
	if playerX >= 0 {
		p, err := factory.CreatePlayer(e, playerX, floorY, nil, a.in)
		require.NoError(t, err)
		a.player = p
	}
	return a
}

func (a *testArena) grunt(t *testing.T, x float64, tune func(*cfg.GruntConfig)) *donburi.Entry {
	t.Helper()
	tuning := cfg.Grunt
	if tune != nil {
		tune(&tuning)
	}
	g, err := factory.CreateGrunt(a.ecs, x, floorY, 0, &tuning)
	require.NoError(t, err)
	return g
}

// step runs n ticks in simulation order.
func (a *testArena) step(n int) {
	for i := 0; i < n; i++ {
		UpdateProbes(a.ecs)
		UpdatePlayer(a.ecs)
		UpdateGrunts(a.ecs)
		UpdateTasks(a.ecs)
		UpdatePhysics(a.ecs)
		UpdateHeld(a.ecs)
		UpdateCombat(a.ecs)
		if a.clips {
			UpdateClips(a.ecs)
		}
		ProcessEvents(a.ecs)
	}
}

// ticks converts seconds to a whole number of ticks, rounding up.
func ticks(seconds float64) int {
	n := int(seconds * float64(cfg.Sim.TPS))
	if float64(n) < seconds*float64(cfg.Sim.TPS) {
		n++
	}
	return n
}

func withDebug(t *testing.T) {
	t.Helper()
	prev := cfg.Sim.Debug
	cfg.Sim.Debug = true
	t.Cleanup(func() { cfg.Sim.Debug = prev })
}

func centerX(e *donburi.Entry) float64 {
	return components.Object.Get(e).CenterX()
}
