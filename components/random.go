package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the world's decision source for grunt coin flips and attack
// rolls.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
