package components

import (
	"github.com/automoto/robofighter/input"
	"github.com/yohamta/donburi"
)

// PlayerInputData binds a player to the source it polls each tick.
type PlayerInputData struct {
	Source input.Source
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
