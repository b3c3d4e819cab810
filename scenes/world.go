package scenes

import (
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/robofighter/assets"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/core"
	"github.com/automoto/robofighter/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ArenaOptions selects what the arena scene loads.
type ArenaOptions struct {
	Arena       string
	ProfilePath string // watched for changes when set
	Seed        int64
}

// ArenaScene runs the simulation against the keyboard and draws it as debug
// boxes. Saving the watched profile rebuilds the arena with the new tuning.
type ArenaScene struct {
	opts    ArenaOptions
	sim     *core.Simulation
	cam     render.Camera
	flicker *render.Flicker
	watcher *cfg.ProfileWatcher
	once    sync.Once
}

func NewArenaScene(opts ArenaOptions) *ArenaScene {
	if opts.Arena == "" {
		opts.Arena = assets.DefaultArena
	}
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.pollProfile()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Sim.Debug = !cfg.Sim.Debug
	}
	if as.sim == nil {
		return
	}

	render.PollInput(as.sim.Input)
	as.sim.Step()

	as.cam.Follow(as.sim.ECS, float64(cfg.Sim.Width), float64(cfg.Sim.Height))
	as.flicker.Update(float32(cfg.Sim.DeltaTime()))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.sim == nil {
		return
	}
	render.Draw(as.sim.ECS, screen, &as.cam, as.flicker)
}

// Close stops watching the profile.
func (as *ArenaScene) Close() error {
	if as.watcher == nil {
		return nil
	}
	return as.watcher.Close()
}

func (as *ArenaScene) configure() {
	as.flicker = render.NewFlicker(0.12)

	if as.opts.ProfilePath != "" {
		as.applyProfile()
		w, err := cfg.NewProfileWatcher(as.opts.ProfilePath)
		if err != nil {
			log.Printf("[scene] not watching %s: %v", as.opts.ProfilePath, err)
		} else {
			as.watcher = w
		}
	}

	as.reset()
}

// reset rebuilds the arena from the current config.
func (as *ArenaScene) reset() {
	arena, err := assets.LoadArena(as.opts.Arena)
	if err != nil {
		log.Printf("[scene] %v", err)
		return
	}
	sim, err := core.NewSimulation(core.WithArena(arena), core.WithSeed(as.opts.Seed))
	if err != nil {
		log.Printf("[scene] %v", err)
		return
	}
	as.sim = sim
	as.cam = render.Camera{X: float64(arena.MapWidth) / 2, Y: float64(arena.MapHeight) / 2}
}

func (as *ArenaScene) pollProfile() {
	if as.watcher == nil {
		return
	}
	select {
	case <-as.watcher.Events:
		if as.applyProfile() {
			as.reset()
		}
	case err := <-as.watcher.Errors:
		log.Printf("[scene] profile watcher: %v", err)
	default:
	}
}

// applyProfile loads the watched profile into the global config, keeping the
// old values when the file is invalid.
func (as *ArenaScene) applyProfile() bool {
	path := as.opts.ProfilePath
	p, err := cfg.LoadProfile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		log.Printf("[scene] keeping previous tuning: %v", err)
		return false
	}
	p.Apply()
	log.Printf("[scene] applied profile %s", path)
	return true
}
