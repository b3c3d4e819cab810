package components

import (
	"github.com/automoto/robofighter/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.GruntState
	PreviousState config.GruntState
	StateTime     float64 // seconds spent in CurrentState

	// Machine mirrors CurrentState and rejects transitions the grunt graph
	// does not allow. Events are named after their destination state.
	Machine *fsm.FSM
}

var State = donburi.NewComponentType[StateData]()

// gruntTransitions lists the legal source states for each destination.
var gruntTransitions = map[config.GruntState][]config.GruntState{
	config.GruntThinking: {config.GruntRecover, config.GruntBackAway, config.GruntReleased},
	config.GruntApproach: {config.GruntThinking},
	config.GruntAttack:   {config.GruntThinking, config.GruntApproach},
	config.GruntBackAway: {config.GruntAttack},
	config.GruntRecover:  {config.GruntHit},
	config.GruntReleased: {config.GruntGrabbed},
	config.GruntHit: {
		config.GruntThinking, config.GruntApproach, config.GruntAttack, config.GruntBackAway,
		config.GruntHit, config.GruntRecover, config.GruntReleased,
	},
	config.GruntGrabbed: {
		config.GruntThinking, config.GruntApproach, config.GruntAttack, config.GruntBackAway,
		config.GruntHit, config.GruntRecover, config.GruntReleased,
	},
}

// NewGruntMachine builds the grunt transition graph starting in initial.
func NewGruntMachine(initial config.GruntState) *fsm.FSM {
	events := make(fsm.Events, 0, len(gruntTransitions))
	for _, dst := range config.GruntStates() {
		srcs := gruntTransitions[dst]
		names := make([]string, len(srcs))
		for i, s := range srcs {
			names[i] = s.String()
		}
		events = append(events, fsm.EventDesc{
			Name: dst.String(),
			Src:  names,
			Dst:  dst.String(),
		})
	}
	return fsm.NewFSM(initial.String(), events, fsm.Callbacks{})
}
