package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pitTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="144" width="320" height="16"/>
  <object id="2" x="40" y="40"/>
 </objectgroup>
 <objectgroup id="2" name="GruntSpawn">
  <object id="3" x="300" y="144"/>
  <object id="4" x="200" y="144">
   <properties>
    <property name="health" type="int" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="5" x="32" y="144"/>
 </objectgroup>
</map>`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solid">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/pit.tmx": {Data: []byte(pitTMX)}}

	arena, err := LoadArena(fsys, "levels/pit.tmx")
	require.NoError(t, err)

	assert.Equal(t, "pit", arena.Name)
	assert.Equal(t, 320, arena.MapWidth)
	assert.Equal(t, 160, arena.MapHeight)
	require.Len(t, arena.Solids, 1, "zero-size objects are skipped")
	assert.Equal(t, Rect{X: 0, Y: 144, W: 320, H: 16}, arena.Solids[0])
	assert.Equal(t, SpawnPoint{X: 32, Y: 144}, arena.PlayerSpawn)

	require.Len(t, arena.GruntSpawns, 2)
	assert.Equal(t, 200.0, arena.GruntSpawns[0].X, "spawns sorted left to right")
	assert.Equal(t, 2, arena.GruntSpawns[0].Health)
	assert.Equal(t, 0, arena.GruntSpawns[1].Health)
}

func TestLoadArenaRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noSpawnTMX)}}
	_, err := LoadArena(fsys, "levels/empty.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/pit.tmx":   {Data: []byte(pitTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}
	arenas, names, err := LoadAllArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"pit"}, names)
	assert.Contains(t, arenas, "pit")

	_, _, err = LoadAllArenas(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
