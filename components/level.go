package components

import (
	"github.com/automoto/robofighter/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name  string
	Arena *leveldata.Arena
}

var Level = donburi.NewComponentType[LevelData]()
