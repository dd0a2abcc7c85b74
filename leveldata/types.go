package leveldata

import (
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

// Level holds the static layout parsed from a TMX file: platform geometry,
// spawn points, and pickups. Coordinates are absolute world positions with
// the origin at the top-left.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []PlatformSpawn
	Enemies     []EnemySpawn
	Coins       []CoinSpawn
	PlayerSpawn gamemath.Vec2
}

type PlatformSpawn struct {
	Box gamemath.Box

	// FullWidth marks the ground strip that spans the whole level
	// regardless of the width drawn in the editor.
	FullWidth bool
}

type EnemySpawn struct {
	Box    gamemath.Box
	Kind   cfg.EnemyKind
	Health int
}

type CoinSpawn struct {
	Pos gamemath.Vec2
}
