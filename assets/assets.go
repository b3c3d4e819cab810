// Package assets embeds the arena levels and tuning profiles.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/robofighter/config"
	"github.com/automoto/robofighter/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:profiles
	profileFS embed.FS
)

// DefaultArena is the level loaded when none is named.
const DefaultArena = "arena"

// Levels exposes the embedded levels directory.
func Levels() fs.FS {
	return levelFS
}

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(levelFS, "levels/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return arena, nil
}

// ArenaNames lists the embedded arenas in sorted order.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(levelFS, "levels")
	return names, err
}

// LoadProfile parses an embedded tuning profile by stem name.
func LoadProfile(name string) (config.Profile, error) {
	return config.LoadProfile(profileFS, "profiles/"+name+".yaml")
}
