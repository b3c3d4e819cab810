package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStepper struct {
	steps int
}

func (c *countingStepper) Step() { c.steps++ }

func TestRunStopsAfterTickLimit(t *testing.T) {
	s := &countingStepper{}
	loop := NewGameLoop(s, 1000)
	loop.StopAfter(3)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 3, s.steps)
	assert.Equal(t, uint64(3), loop.Ticks())
}

func TestRunReturnsContextError(t *testing.T) {
	s := &countingStepper{}
	loop := NewGameLoop(s, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

func TestRunFastCallsOnTick(t *testing.T) {
	s := &countingStepper{}
	loop := NewGameLoop(s, 0)

	var seen []uint64
	loop.OnTick(func(tick uint64) { seen = append(seen, tick) })
	loop.RunFast(4)

	assert.Equal(t, 4, s.steps)
	assert.Equal(t, []uint64{1, 2, 3, 4}, seen)
}

func TestSimulationSatisfiesStepper(t *testing.T) {
	sim, err := NewSimulation(WithArena(flatArena()), WithoutGrunts())
	require.NoError(t, err)

	loop := NewGameLoop(sim, 60)
	loop.RunFast(10)
	assert.Equal(t, uint64(10), sim.Tick())
}
