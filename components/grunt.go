package components

import (
	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/moveset"
	"github.com/yohamta/donburi"
)

type GruntData struct {
	Tuning *config.GruntConfig
	Attack *moveset.Move

	FacingRight     bool
	InFrontOfPlayer bool

	// Combat flags. Grabbed excludes Attacking and Hit.
	Attacking       bool
	Hit             bool
	Recovering      bool
	Grabbed         bool
	CanTakeHit      bool
	ColliderEnabled bool

	AttackCount int
	Holder      *donburi.Entry

	SpawnX, SpawnY float64
}

// Hittable reports whether a strike can land on this grunt.
func (g *GruntData) Hittable() bool {
	return g.CanTakeHit && g.ColliderEnabled && !g.Grabbed
}

var Grunt = donburi.NewComponentType[GruntData]()
