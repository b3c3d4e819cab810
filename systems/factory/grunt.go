package factory

import (
	"fmt"

	"github.com/automoto/robofighter/archetypes"
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/moveset"
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/automoto/robofighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGrunt spawns a grunt with its feet at (x, y). The spawn point is kept
// for respawning. health <= 0 uses the tuning's default. tuning is copied;
// nil uses the current config.Grunt.
func CreateGrunt(ecs *ecs.ECS, x, y float64, health int, tuning *cfg.GruntConfig) (*donburi.Entry, error) {
	if tuning == nil {
		tuning = &cfg.Grunt
	}
	t := *tuning

	attack, err := moveset.NewMove(t.Attack)
	if err != nil {
		return nil, fmt.Errorf("create grunt: %w", err)
	}
	if health <= 0 {
		health = t.Health
	}

	grunt := archetypes.Grunt.Spawn(ecs)

	obj := resolv.NewObject(x-t.Width/2, y-t.Height, t.Width, t.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Width, t.Height))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvGrunt)
	obj.Data = grunt
	components.Object.SetValue(grunt, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Grunt.SetValue(grunt, components.GruntData{
		Tuning:          &t,
		Attack:          attack,
		CanTakeHit:      true,
		ColliderEnabled: true,
		SpawnX:          x,
		SpawnY:          y,
	})
	components.State.SetValue(grunt, components.StateData{
		CurrentState:  cfg.GruntThinking,
		PreviousState: cfg.GruntThinking,
		Machine:       components.NewGruntMachine(cfg.GruntThinking),
	})
	components.Physics.SetValue(grunt, components.PhysicsData{
		Blockers: []string{tags.ResolvSolid},
	})
	components.Health.SetValue(grunt, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Task.SetValue(grunt, components.TaskData{Runner: &sequence.Runner{}})

	return grunt, nil
}
