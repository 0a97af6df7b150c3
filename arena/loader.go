// Package arena parses TMX arena files into the playfield the engine runs on.
// Only the map size and the PlayerSpawn object group are read.
package arena

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/lafriks/go-tiled"
)

// SpawnGroup is the object group holding player spawn points
const SpawnGroup = "PlayerSpawn"

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (components.ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return components.ArenaData{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)
	if width <= 0 || height <= 0 {
		return components.ArenaData{}, fmt.Errorf("arena %s has no area (%vx%v)", tmxPath, width, height)
	}

	data := components.ArenaData{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:       width,
		Height:      height,
		PlayerSpawn: gamemath.V(width/2, height/2),
	}

	var spawns []gamemath.Vec2
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawns = append(spawns, gamemath.V(o.X, o.Y))
		}
	}

	// Left-most spawn wins so the pick does not depend on object order
	sort.Slice(spawns, func(i, j int) bool {
		return spawns[i].X < spawns[j].X
	})
	if len(spawns) > 0 {
		data.PlayerSpawn = gamemath.V(
			gamemath.Clamp(spawns[0].X, 0, width),
			gamemath.Clamp(spawns[0].Y, 0, height),
		)
	}

	return data, nil
}

// LoadAll loads every .tmx file in dir and returns them keyed by stem, plus
// the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]components.ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]components.ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
