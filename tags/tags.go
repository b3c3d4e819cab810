package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Grunt  = donburi.NewTag().SetName("Grunt")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayerWall = "playerwall"
	ResolvCharacter  = "character"
	ResolvPlayer     = "Player"
	ResolvGrunt      = "Grunt"
)
