package assets

import (
	"embed"
	"errors"
	"fmt"

	"github.com/automoto/neon-dodge/arena"
	"github.com/automoto/neon-dodge/components"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// ArenaDir is the embedded directory holding the bundled TMX arenas
const ArenaDir = "arenas"

// LoadArenas parses every bundled arena and returns them with their sorted names
func LoadArenas() (map[string]components.ArenaData, []string, error) {
	return arena.LoadAll(arenaFS, ArenaDir)
}

// ErrUnknownArena is returned by LoadArena for a name that is not bundled
var ErrUnknownArena = errors.New("unknown arena")

// LoadArena returns the named bundled arena, or the first one by name
// when name is empty.
func LoadArena(name string) (components.ArenaData, error) {
	arenas, names, err := LoadArenas()
	if err != nil {
		return components.ArenaData{}, err
	}
	if name == "" {
		name = names[0]
	}
	a, ok := arenas[name]
	if !ok {
		return components.ArenaData{}, fmt.Errorf("%w %q (have %v)", ErrUnknownArena, name, names)
	}
	return a, nil
}
