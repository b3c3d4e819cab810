package factory

import (
	"math/rand"

	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRandom installs the world's decision source. Pass a seeded source for
// reproducible runs.
func CreateRandom(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	e := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(e, components.RandomData{Rand: rng})
	return e
}
