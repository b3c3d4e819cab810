// Command arena runs the combat simulation headless with a bot at the
// controls and logs a summary when it stops.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/robofighter/assets"
	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/core"
)

func main() {
	arenaName := flag.String("arena", assets.DefaultArena, "Embedded arena name")
	profile := flag.String("profile", "", "Tuning profile: an embedded name or a path to a YAML file")
	seed := flag.Int64("seed", config.Sim.Seed, "Seed for grunt decisions")
	tickRate := flag.Int("tickrate", config.Sim.TPS, "Ticks per second")
	ticks := flag.Uint64("ticks", 3600, "Stop after this many ticks (0 = until interrupted)")
	difficulty := flag.Int("bot", int(config.BotDifficultyNormal), "Bot difficulty: 0 easy, 1 normal, 2 hard")
	fast := flag.Bool("fast", false, "Step as fast as possible instead of in real time")
	debug := flag.Bool("debug", false, "Log state transitions and fail loudly on contract violations")
	flag.Parse()

	if *fast && *ticks == 0 {
		log.Fatal("-fast needs a tick limit")
	}

	if *profile != "" {
		p, err := loadProfile(*profile)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		p.Apply()
		log.Printf("Applied profile %q", *profile)
	}
	config.Sim.Debug = config.Sim.Debug || *debug

	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	sim, err := core.NewSimulation(
		core.WithArena(arena),
		core.WithSeed(*seed),
		core.WithBot(config.BotDifficulty(*difficulty)),
	)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	loop := core.NewGameLoop(sim, *tickRate)
	loop.StopAfter(*ticks)

	log.Printf("Starting arena %q (tick rate: %d/s, seed: %d, grunts: %d)",
		arena.Name, *tickRate, *seed, len(arena.GruntSpawns))

	if *fast {
		loop.RunFast(*ticks)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := loop.Run(ctx); err != nil && err != context.Canceled {
			log.Fatalf("Loop error: %v", err)
		}
	}

	stats := sim.Stats()
	log.Printf("Done: %d ticks, %d hits, %d grunts down, %d respawned, %d on the field",
		stats.Ticks, stats.Hits, stats.Deaths, stats.Respawns, stats.Grunts)
}

// loadProfile reads name as a file when it exists on disk and as an embedded
// profile otherwise.
func loadProfile(name string) (config.Profile, error) {
	if _, err := os.Stat(name); err == nil {
		return config.LoadProfile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadProfile(name)
}
