package factory

import (
	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/components"
	"github.com/automoto/robofighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds solid ground that blocks every actor.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlocker(ecs, x, y, w, h, tags.ResolvSolid)
}

// CreatePlayerWall adds a barrier only the player collides with.
func CreatePlayerWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlocker(ecs, x, y, w, h, tags.ResolvPlayerWall)
}

func createBlocker(ecs *ecs.ECS, x, y, w, h float64, tag string) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
