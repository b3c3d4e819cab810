package archetypes

import (
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.PlayerInput,
		components.Task,
		components.Strike,
		components.Clip,
	)
	Grunt = newArchetype(
		tags.Grunt,
		components.Grunt,
		components.Object,
		components.Physics,
		components.Health,
		components.State,
		components.Task,
		components.Strike,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.Gateway,
	)
	Level = newArchetype(
		components.Level,
	)
	Random = newArchetype(
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
