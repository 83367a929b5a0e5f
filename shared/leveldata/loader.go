package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var levelsFS embed.FS

// DefaultArenaPath is the embedded arena every match is played on.
const DefaultArenaPath = "levels/arena.tmx"

// LoadArena parses a TMX file and returns the arena geometry. It takes an
// fs.FS so callers can pass the embedded levels or os.DirFS in tests.
//
// Expected object groups: "Ground" (one rectangle whose top edge is the
// ground line), "Platforms" (rectangles, order preserved) and "PlayerSpawn"
// (points with a spawnIndex property).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	groundFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			if len(og.Objects) == 0 {
				continue
			}
			arena.GroundHeight = og.Objects[0].Y
			groundFound = true
		case "Platforms":
			for _, o := range og.Objects {
				arena.Platforms = append(arena.Platforms, gamemath.Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, SpawnPoint{
					X:           o.X,
					Y:           o.Y,
					Index:       o.Properties.GetInt("spawnIndex"),
					Name:        o.Name,
					FacingRight: o.Properties.GetBool("facingRight"),
				})
			}
		}
	}

	if !groundFound {
		return nil, fmt.Errorf("%s: missing Ground object group", tmxPath)
	}
	if arena.GroundHeight <= 0 || arena.GroundHeight > arena.Height {
		return nil, fmt.Errorf("%s: ground line %v outside map height %v", tmxPath, arena.GroundHeight, arena.Height)
	}

	sort.SliceStable(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}

// MustLoadArena loads the embedded default arena and panics if it is broken.
func MustLoadArena() *Arena {
	arena, err := LoadArena(levelsFS, DefaultArenaPath)
	if err != nil {
		panic(err)
	}
	return arena
}
