package systems

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// setGruntState moves a grunt to next through its transition graph. Staying in
// the current state is allowed; any other rejected transition is a contract
// violation and leaves the state untouched.
func setGruntState(e *donburi.Entry, next cfg.GruntState) bool {
	state := components.State.Get(e)
	if err := state.Machine.Event(context.Background(), next.String()); err != nil {
		var noop fsm.NoTransitionError
		if !errors.As(err, &noop) {
			contractViolation("[grunt] %v: %s -> %s rejected: %v", e.Entity(), state.CurrentState, next, err)
			return false
		}
	}
	if state.CurrentState == next {
		return true
	}
	if cfg.Sim.Debug {
		log.Printf("[grunt] %v: %s -> %s", e.Entity(), state.CurrentState, next)
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTime = 0
	return true
}

func contractViolation(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cfg.Sim.Debug {
		panic(msg)
	}
	log.Print(msg)
}

// derivePlayerState maps the player's flags to the state the animation layer
// reads.
func derivePlayerState(p *components.PlayerData, physics *components.PhysicsData) cfg.PlayerState {
	switch {
	case p.Hit:
		return cfg.PlayerHit
	case p.Throwing:
		return cfg.PlayerThrow
	case p.Grabbing && p.Reaching:
		return cfg.PlayerGrabReach
	case p.Grabbing && p.RecoveringGrab:
		return cfg.PlayerGrabRecover
	case p.Grabbing || len(p.Held) > 0:
		return cfg.PlayerGrabHold
	case p.Attacking:
		return cfg.PlayerAttack
	case !physics.Grounded:
		return cfg.PlayerAirborne
	case physics.SpeedX != 0:
		return cfg.PlayerMove
	}
	return cfg.PlayerIdle
}
