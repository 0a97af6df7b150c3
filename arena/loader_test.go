package arena

import (
	"testing"
	"testing/fstest"
)

const neonTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="30" height="20" tilewidth="30" tileheight="30" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="600" y="200"/>
  <object id="2" x="300" y="250"/>
 </objectgroup>
</map>
`

const bareTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/neon.tmx":  {Data: []byte(neonTMX)},
		"arenas/bare.tmx":  {Data: []byte(bareTMX)},
		"arenas/notes.txt": {Data: []byte("ignored")},
	}
}

func TestLoadReadsSizeAndSpawn(t *testing.T) {
	a, err := Load(testFS(), "arenas/neon.tmx")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if a.Name != "neon" {
		t.Errorf("Expected name neon, got %q", a.Name)
	}
	if a.Width != 900 || a.Height != 600 {
		t.Errorf("Expected 900x600, got %vx%v", a.Width, a.Height)
	}
	if a.PlayerSpawn.X != 300 || a.PlayerSpawn.Y != 250 {
		t.Errorf("Expected left-most spawn (300,250), got %v", a.PlayerSpawn)
	}
}

func TestLoadDefaultsSpawnToCenter(t *testing.T) {
	a, err := Load(testFS(), "arenas/bare.tmx")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if a.PlayerSpawn.X != 80 || a.PlayerSpawn.Y != 64 {
		t.Errorf("Expected center spawn (80,64), got %v", a.PlayerSpawn)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(testFS(), "arenas/missing.tmx"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestLoadAll(t *testing.T) {
	arenas, names, err := LoadAll(testFS(), "arenas")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(names) != 2 || names[0] != "bare" || names[1] != "neon" {
		t.Errorf("Expected sorted [bare neon], got %v", names)
	}
	if _, ok := arenas["neon"]; !ok {
		t.Errorf("Expected neon arena in the map")
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "arenas"); err == nil {
		t.Errorf("Expected an error when no arenas exist")
	}
}
