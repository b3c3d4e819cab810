package components

import (
	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/moveset"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Tuning *config.PlayerConfig
	Moves  *moveset.Set

	CurrentMove *moveset.Move
	Tier        int     // grounded move index, cycles 0..Tiers-1
	ComboTimer  float64 // seconds left to chain the next tier; 0 when closed

	FacingRight bool

	Attacking       bool
	AttackClipEnded bool
	HitObject       bool // the current attack connected
	Hit             bool

	Grabbing       bool
	Reaching       bool
	RecoveringGrab bool
	Throwing       bool
	Held           []*donburi.Entry

	// State is derived from the flags at the end of each player update.
	State config.PlayerState
}

var Player = donburi.NewComponentType[PlayerData]()
