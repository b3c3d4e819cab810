// Package leveldata parses TMX arenas into plain data. It has no dependencies
// on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the simulation needs from a level file.
type Arena struct {
	Name        string
	Solids      []Rect
	PlayerWalls []Rect
	PlayerSpawn SpawnPoint
	GruntSpawns []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a collision rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where an actor's feet are placed at spawn. Health is only set
// for grunt spawns that override the configured default (0 = default).
type SpawnPoint struct {
	X, Y   float64
	Health int
}
