package systems

import (
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTasks advances every actor's running sequence by one tick.
func UpdateTasks(ecs *ecs.ECS) {
	dt := cfg.Sim.DeltaTime()
	components.Task.Each(ecs.World, func(e *donburi.Entry) {
		components.Task.Get(e).Runner.Advance(dt)
	})
}

func runnerOf(e *donburi.Entry) *sequence.Runner {
	return components.Task.Get(e).Runner
}
