package factory

import (
	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/components"
	"github.com/automoto/robofighter/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the arena and builds its static collision. Actors are
// spawned by the caller.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:  arena.Name,
		Arena: arena,
	})

	for _, r := range arena.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range arena.PlayerWalls {
		CreatePlayerWall(ecs, r.X, r.Y, r.W, r.H)
	}

	return level
}
