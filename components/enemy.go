package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

// EnemyData holds one pooled enemy. The State field makes the lifecycle
// explicit: off-screen enemies are fully suspended, dead enemies only run
// their respawn countdown, and the entity itself is never removed.
type EnemyData struct {
	Kind  cfg.EnemyKind
	State cfg.EnemyStateID

	RespawnPos     gamemath.Vec2
	RespawnTimer   float64
	DamageCooldown float64
	KnockbackTimer float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
