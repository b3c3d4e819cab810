package factory

import (
	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/collision"
	"github.com/automoto/robofighter/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	components.Gateway.SetValue(space, components.GatewayData{
		Gateway: collision.NewSpaceGateway(spaceData),
	})
	return space
}

// addToSpace registers obj with the world's space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
