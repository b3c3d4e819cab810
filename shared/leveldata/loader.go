package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	TileLayer        = "wg-tiles"
	SolidGroup       = "Solid"
	PlayerWallGroup  = "PlayerWall"
	PlayerSpawnGroup = "PlayerSpawn"
	GruntSpawnGroup  = "GruntSpawn"
)

var ErrNoPlayerSpawn = errors.New("leveldata: no player spawn")

// LoadArena parses a TMX file. Solid ground comes from the wg-tiles layer
// and from rectangles in the Solid object group. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Solids = append(arena.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidGroup:
			arena.Solids = append(arena.Solids, rects(og)...)
		case PlayerWallGroup:
			arena.PlayerWalls = append(arena.PlayerWalls, rects(og)...)
		case PlayerSpawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case GruntSpawnGroup:
			for _, o := range og.Objects {
				arena.GruntSpawns = append(arena.GruntSpawns, SpawnPoint{
					X:      o.X,
					Y:      o.Y,
					Health: o.Properties.GetInt("health"),
				})
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(arena.GruntSpawns, func(i, j int) bool {
		return arena.GruntSpawns[i].X < arena.GruntSpawns[j].X
	})

	return arena, nil
}

func rects(og *tiled.ObjectGroup) []Rect {
	out := make([]Rect, 0, len(og.Objects))
	for _, o := range og.Objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		out = append(out, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
	}
	return out
}

// LoadAllArenas discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, levelsDir string) (map[string]*Arena, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
