package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RespawnRequest asks the level to spawn a fresh grunt at a spawn point.
type RespawnRequest struct {
	X, Y   float64
	Health int
}

// HitLanded reports a strike that connected.
type HitLanded struct {
	Attacker   donburi.Entity
	Defender   donburi.Entity
	KnockbackX float64
	KnockbackY float64
	OnPlayer   bool
}

// GrabStarted reports a new grab relationship.
type GrabStarted struct {
	Holder donburi.Entity
	Held   donburi.Entity
}

// GrabEnded reports a held grunt being let go.
type GrabEnded struct {
	Holder donburi.Entity
	Held   donburi.Entity
	VelX   float64
	VelY   float64
	Thrown bool
}

// GruntDied reports a grunt leaving the world.
type GruntDied struct {
	Grunt  donburi.Entity
	SpawnX float64
	SpawnY float64
}

var (
	RespawnRequested = events.NewEventType[RespawnRequest]()
	HitLandedEvent   = events.NewEventType[HitLanded]()
	GrabStartedEvent = events.NewEventType[GrabStarted]()
	GrabEndedEvent   = events.NewEventType[GrabEnded]()
	GruntDiedEvent   = events.NewEventType[GruntDied]()
)

// ProcessEvents delivers everything published during the tick.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
