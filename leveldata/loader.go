package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"

	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

// Load parses a TMX file and returns the level layout. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
//
// Layout lives in object groups: "Platforms" (rects, optional fullWidth bool
// property), "Enemies" (rects with kind and health properties), "Coins"
// (points), and "PlayerSpawn" (single point).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				fullWidth := o.Properties.GetBool("fullWidth")
				w := o.Width
				if fullWidth {
					w = level.Width
				}
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Box:       gamemath.Box{X: o.X, Y: o.Y, W: w, H: o.Height},
					FullWidth: fullWidth,
				})
			}
		case "Enemies":
			for _, o := range og.Objects {
				kind := cfg.ParseEnemyKind(o.Properties.GetString("kind"))
				health := o.Properties.GetInt("health")
				if health <= 0 {
					return nil, fmt.Errorf("enemy at (%.0f, %.0f) in %s has no health property", o.X, o.Y, tmxPath)
				}
				level.Enemies = append(level.Enemies, EnemySpawn{
					Box:    gamemath.Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind:   kind,
					Health: health,
				})
			}
		case "Coins":
			for _, o := range og.Objects {
				level.Coins = append(level.Coins, CoinSpawn{
					Pos: gamemath.Vec2{X: o.X, Y: o.Y},
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = gamemath.Vec2{X: o.X, Y: o.Y}
			}
		}
	}

	if len(level.Platforms) == 0 {
		return nil, fmt.Errorf("level %s has no Platforms object group", tmxPath)
	}

	return level, nil
}
