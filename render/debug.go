package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/robofighter/components"
	"github.com/automoto/robofighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorPlayerWall = color.RGBA{60, 60, 140, 255}
	colorPlayer     = color.RGBA{0, 120, 255, 255}
	colorGrunt      = color.RGBA{255, 60, 60, 255}
	colorStrike     = color.RGBA{255, 220, 0, 255}
)

// Draw renders every collider in the space as a box, actors filled and
// flickering while hit, with strikes and state labels on top.
func Draw(e *ecs.ECS, screen *ebiten.Image, cam *Camera, flicker *Flicker) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	camX, camY := cam.Offset(width, height)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			switch {
			case obj.HasTags("solid"):
				strokeBox(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, colorSolid)
			case obj.HasTags("playerwall"):
				strokeBox(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, colorPlayerWall)
			}
		}
	}

	alpha := flicker.Alpha()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)
		a := float32(1)
		if player.Hit {
			a = alpha
		}
		fillBox(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, colorPlayer, a)
		if player.Attacking && components.Strike.Get(entry).Active {
			r := obj.Box().Ahead(player.Tuning.AttackReach, player.FacingRight)
			strokeBox(screen, r.X+camX, r.Y+camY, r.W, r.H, colorStrike)
		}
		label := player.State.String()
		if player.Attacking && player.CurrentMove != nil {
			label = player.CurrentMove.Name()
		}
		ebitenutil.DebugPrintAt(screen, label, int(obj.X+camX), int(obj.Y+camY)-16)
	})

	tags.Grunt.Each(e.World, func(entry *donburi.Entry) {
		grunt := components.Grunt.Get(entry)
		obj := components.Object.Get(entry)
		a := float32(1)
		if grunt.Hit || !grunt.ColliderEnabled {
			a = alpha
		}
		fillBox(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, colorGrunt, a)
		if grunt.Attacking && components.Strike.Get(entry).Active {
			r := obj.Box().Ahead(grunt.Tuning.AttackReach, grunt.FacingRight)
			strokeBox(screen, r.X+camX, r.Y+camY, r.W, r.H, colorStrike)
		}
		health := components.Health.Get(entry)
		label := fmt.Sprintf("%s %d/%d", components.State.Get(entry).CurrentState, health.Current, health.Max)
		ebitenutil.DebugPrintAt(screen, label, int(obj.X+camX)-8, int(obj.Y+camY)-16)
	})
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}

func fillBox(screen *ebiten.Image, x, y, w, h float64, c color.RGBA, alpha float32) {
	nc := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * alpha)}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), nc, false)
}
