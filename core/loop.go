package core

import (
	"context"
	"log"
	"time"
)

// Stepper is anything the loop can advance one tick at a time.
type Stepper interface {
	Step()
}

type GameLoop struct {
	sim      Stepper
	tickRate int
	maxTicks uint64
	ticks    uint64
	onTick   func(tick uint64)
}

func NewGameLoop(sim Stepper, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
	}
}

// StopAfter ends Run once n ticks have been taken. Zero runs until the context
// is done.
func (g *GameLoop) StopAfter(n uint64) {
	g.maxTicks = n
}

// OnTick registers a callback invoked after every step.
func (g *GameLoop) OnTick(fn func(tick uint64)) {
	g.onTick = fn
}

// Ticks returns the number of steps taken by Run.
func (g *GameLoop) Ticks() uint64 {
	return g.ticks
}

// Run steps the simulation at the tick rate until ctx is done or the tick
// limit is reached. It returns ctx.Err() when cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[loop] stopped after %d ticks", g.ticks)
			return ctx.Err()
		case <-ticker.C:
			g.tick()
			if g.maxTicks > 0 && g.ticks >= g.maxTicks {
				log.Printf("[loop] reached %d ticks", g.ticks)
				return nil
			}
		}
	}
}

// RunFast steps n ticks back to back without waiting for the clock.
func (g *GameLoop) RunFast(n uint64) {
	for i := uint64(0); i < n; i++ {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	g.sim.Step()
	g.ticks++
	if g.onTick != nil {
		g.onTick(g.ticks)
	}
}
