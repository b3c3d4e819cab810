package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX float64 // pixels per second
	SpeedY float64

	// Kinematic bodies are positioned by their owner and skip integration.
	Kinematic bool

	Grounded bool
	// Landed is set for the tick a body touches ground after being airborne.
	Landed bool
	// GroundContact is set for every tick the body is stopped by something
	// underneath.
	GroundContact bool

	// Blockers are the resolv tags this body cannot move through.
	Blockers []string
}

var Physics = donburi.NewComponentType[PhysicsData]()
