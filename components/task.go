package components

import (
	"github.com/automoto/robofighter/shared/sequence"
	"github.com/yohamta/donburi"
)

type TaskData struct {
	Runner *sequence.Runner
}

var Task = donburi.NewComponentType[TaskData]()
