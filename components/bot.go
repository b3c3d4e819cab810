package components

import (
	"math/rand"

	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/yohamta/donburi"
)

// BotData drives a player's virtual input from simple AI decisions.
type BotData struct {
	Difficulty    config.BotDifficulty
	Input         *input.Virtual
	Rand          *rand.Rand
	DecisionTimer int
	Target        *donburi.Entry
	HoldTicks     int // ticks spent holding grabbed grunts
}

var Bot = donburi.NewComponentType[BotData]()
