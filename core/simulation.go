// Package core wires the combat systems into a steppable simulation and
// drives it at a fixed tick rate.
package core

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/robofighter/assets"
	"github.com/automoto/robofighter/components"
	cfg "github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/input"
	"github.com/automoto/robofighter/shared/leveldata"
	"github.com/automoto/robofighter/systems"
	"github.com/automoto/robofighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation owns one arena's world: its player, grunts and the per-tick
// system order.
type Simulation struct {
	ECS    *ecs.ECS
	Player *donburi.Entry
	Arena  *leveldata.Arena

	// Input is the player's virtual source unless an external one was given.
	Input *input.Virtual

	playerTuning *cfg.PlayerConfig
	gruntTuning  *cfg.GruntConfig
	source       input.Source
	rng          *rand.Rand
	bot          *cfg.BotDifficulty
	clipClock    bool
	spawnGrunts  bool

	tick     uint64
	respawns int
	deaths   int
	hits     int
}

// Option configures a Simulation before the world is built.
type Option func(*Simulation)

// WithArena uses arena instead of the embedded default.
func WithArena(arena *leveldata.Arena) Option {
	return func(s *Simulation) { s.Arena = arena }
}

// WithSeed seeds the world's decision source.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the world's decision source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

func WithPlayerTuning(t *cfg.PlayerConfig) Option {
	return func(s *Simulation) { s.playerTuning = t }
}

func WithGruntTuning(t *cfg.GruntConfig) Option {
	return func(s *Simulation) { s.gruntTuning = t }
}

// WithInput polls src for the player instead of a fresh virtual source.
func WithInput(src input.Source) Option {
	return func(s *Simulation) { s.source = src }
}

// WithBot lets an AI drive the player at the given difficulty.
func WithBot(d cfg.BotDifficulty) Option {
	return func(s *Simulation) { s.bot = &d }
}

// WithoutClipClock leaves the Notify callbacks to the caller.
func WithoutClipClock() Option {
	return func(s *Simulation) { s.clipClock = false }
}

// WithoutGrunts skips the arena's grunt spawns.
func WithoutGrunts() Option {
	return func(s *Simulation) { s.spawnGrunts = false }
}

// NewSimulation builds the world for an arena and registers the systems in
// tick order.
func NewSimulation(opts ...Option) (*Simulation, error) {
	s := &Simulation{
		clipClock:   true,
		spawnGrunts: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.Arena == nil {
		arena, err := assets.LoadArena(assets.DefaultArena)
		if err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
		s.Arena = arena
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Sim.Seed))
	}
	if s.playerTuning == nil {
		t := cfg.Player
		s.playerTuning = &t
	}
	if s.gruntTuning == nil {
		t := cfg.Grunt
		s.gruntTuning = &t
	}

	s.ECS = ecs.NewECS(donburi.NewWorld())
	s.registerSystems()

	if err := s.buildWorld(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s.subscribe()

	return s, nil
}

// registerSystems fixes the per-tick order: input, probes, actor logic,
// scheduled sequences, physics, held positions, combat, clips, then events.
func (s *Simulation) registerSystems() {
	if s.bot != nil {
		s.ECS.AddSystem(systems.UpdateBots)
	}
	s.ECS.AddSystem(systems.UpdateProbes)
	s.ECS.AddSystem(systems.UpdatePlayer)
	s.ECS.AddSystem(systems.UpdateGrunts)
	s.ECS.AddSystem(systems.UpdateTasks)
	s.ECS.AddSystem(systems.UpdatePhysics)
	s.ECS.AddSystem(systems.UpdateHeld)
	s.ECS.AddSystem(systems.UpdateCombat)
	if s.clipClock {
		s.ECS.AddSystem(systems.UpdateClips)
	}
	s.ECS.AddSystem(systems.ProcessEvents)
}

func (s *Simulation) buildWorld() error {
	factory.CreateSpace(s.ECS, s.Arena.MapWidth, s.Arena.MapHeight, cfg.Sim.CellSize, cfg.Sim.CellSize)
	factory.CreateRandom(s.ECS, s.rng)
	factory.CreateLevel(s.ECS, s.Arena)

	src := s.source
	if src == nil {
		s.Input = &input.Virtual{}
		src = s.Input
	}

	player, err := factory.CreatePlayer(s.ECS, s.Arena.PlayerSpawn.X, s.Arena.PlayerSpawn.Y, s.playerTuning, src)
	if err != nil {
		return err
	}
	s.Player = player

	if s.bot != nil {
		if s.Input == nil {
			return fmt.Errorf("bot needs the built-in virtual input")
		}
		player.AddComponent(components.Bot)
		components.Bot.SetValue(player, components.BotData{
			Difficulty: *s.bot,
			Input:      s.Input,
			Rand:       rand.New(rand.NewSource(s.rng.Int63())),
		})
	}

	if !s.spawnGrunts {
		return nil
	}
	for _, sp := range s.Arena.GruntSpawns {
		if _, err := factory.CreateGrunt(s.ECS, sp.X, sp.Y, sp.Health, s.gruntTuning); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) subscribe() {
	systems.RespawnRequested.Subscribe(s.ECS.World, func(w donburi.World, req systems.RespawnRequest) {
		if _, err := s.RequestRespawn(req.X, req.Y, req.Health); err != nil {
			log.Printf("[level] respawn at (%.0f, %.0f) failed: %v", req.X, req.Y, err)
		}
	})
	systems.GruntDiedEvent.Subscribe(s.ECS.World, func(w donburi.World, e systems.GruntDied) {
		s.deaths++
	})
	systems.HitLandedEvent.Subscribe(s.ECS.World, func(w donburi.World, e systems.HitLanded) {
		s.hits++
	})
}

// RequestRespawn spawns a fresh grunt with its feet at (x, y).
func (s *Simulation) RequestRespawn(x, y float64, health int) (*donburi.Entry, error) {
	e, err := factory.CreateGrunt(s.ECS, x, y, health, s.gruntTuning)
	if err != nil {
		return nil, err
	}
	s.respawns++
	if cfg.Sim.Debug {
		log.Printf("[level] grunt respawned at (%.0f, %.0f)", x, y)
	}
	return e, nil
}

// Step advances the world by one fixed tick.
func (s *Simulation) Step() {
	s.ECS.Update()
	s.tick++
}

// Tick is the number of steps taken so far.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Stats summarizes what happened so far.
type Stats struct {
	Ticks    uint64
	Hits     int
	Deaths   int
	Respawns int
	Grunts   int
}

func (s *Simulation) Stats() Stats {
	grunts := 0
	components.Grunt.Each(s.ECS.World, func(*donburi.Entry) { grunts++ })
	return Stats{
		Ticks:    s.tick,
		Hits:     s.hits,
		Deaths:   s.deaths,
		Respawns: s.respawns,
		Grunts:   grunts,
	}
}
