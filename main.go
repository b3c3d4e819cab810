package main

import (
	"flag"
	"image"
	"io"
	"log"

	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(opts scenes.ArenaOptions) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Sim.Width, config.Sim.Height)
	return config.Sim.Width, config.Sim.Height
}

func main() {
	arena := flag.String("arena", "", "Embedded arena name")
	profile := flag.String("profile", "", "Path to a YAML tuning profile, reloaded on save")
	seed := flag.Int64("seed", config.Sim.Seed, "Seed for grunt decisions")
	debug := flag.Bool("debug", false, "Log state transitions and fail loudly on contract violations")
	flag.Parse()

	config.Sim.Debug = *debug

	ebiten.SetWindowSize(config.Sim.Width*2, config.Sim.Height*2)
	ebiten.SetWindowTitle("robofighter")
	ebiten.SetTPS(config.Sim.TPS)

	game := NewGame(scenes.ArenaOptions{Arena: *arena, ProfilePath: *profile, Seed: *seed})
	err := ebiten.RunGame(game)
	if c, ok := game.scene.(io.Closer); ok {
		_ = c.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
