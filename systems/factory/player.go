package factory

import (
	"fmt"

	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/automoto/robofighter/shared/moveset"
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/automoto/robofighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). tuning is copied;
// nil uses the current config.Player.
func CreatePlayer(ecs *ecs.ECS, x, y float64, tuning *cfg.PlayerConfig, src input.Source) (*donburi.Entry, error) {
	if tuning == nil {
		tuning = &cfg.Player
	}
	t := *tuning

	moves, err := moveset.New(t.Moves, t.AirMove)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x-t.Width/2, y-t.Height, t.Width, t.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Width, t.Height))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Tuning:      &t,
		Moves:       moves,
		CurrentMove: moves.Tier(0),
		FacingRight: true,
		State:       cfg.PlayerIdle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Blockers: []string{tags.ResolvSolid, tags.ResolvPlayerWall},
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{Source: src})
	components.Task.SetValue(player, components.TaskData{Runner: &sequence.Runner{}})

	return player, nil
}
