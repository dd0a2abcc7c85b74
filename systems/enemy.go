package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

// UpdateEnemies advances every pooled enemy. Living enemies toggle between
// active and off-screen based on camera visibility; only active enemies
// track, move, and deal contact damage. Dead enemies run their respawn
// countdown and re-enter at their spawn point with full health.
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(e.World)
	var playerBox gamemath.Box
	if hasPlayer {
		playerBox = components.Object.Get(playerEntry).Box()
	}

	var viewport gamemath.Box
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		viewport = components.Camera.Get(cameraEntry).Viewport()
	}

	dt := Delta(e)

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)
		phys := components.Physics.Get(enemyEntry)

		if enemy.State != cfg.EnemyDeadPendingRespawn {
			if gamemath.Overlaps(obj.Box(), viewport) {
				enemy.State = cfg.EnemyActive
			} else {
				enemy.State = cfg.EnemyOffScreen
			}
		}

		switch enemy.State {
		case cfg.EnemyActive:
			if enemy.KnockbackTimer <= 0 {
				if hasPlayer {
					trackPlayer(enemy, obj, phys, playerBox)
				}

				if !phys.GravityExempt {
					phys.Vel.Y += cfg.Physics.Gravity * dt
					if phys.Vel.Y > cfg.Physics.TerminalVelocity {
						phys.Vel.Y = cfg.Physics.TerminalVelocity
					}
				}
			} else {
				enemy.KnockbackTimer -= dt
			}

			moveAndCollide(obj, phys, dt)

			if hasPlayer && gamemath.Overlaps(playerBox, obj.Box()) {
				DamagePlayer(e, playerEntry, cfg.Enemy.ContactDamage, obj.Box().Pos())
			}

		case cfg.EnemyDeadPendingRespawn:
			enemy.RespawnTimer -= dt
			if enemy.RespawnTimer <= 0 {
				RespawnEnemy(enemyEntry)
			}
		}

		if enemy.DamageCooldown > 0 {
			enemy.DamageCooldown -= dt
		}
	})
}

// trackPlayer steers the enemy toward the player. Ground enemies chase only
// horizontally; flying enemies chase on both axes. The one-unit slack stops
// enemies from jittering when edges line up exactly.
func trackPlayer(enemy *components.EnemyData, obj *components.ObjectData, phys *components.PhysicsData, player gamemath.Box) {
	kind := cfg.Enemy.Kinds[enemy.Kind]

	if player.X+player.W < obj.X+1 {
		phys.Vel.X = -kind.ChaseSpeed
	} else if player.X > obj.X+obj.W-1 {
		phys.Vel.X = kind.ChaseSpeed
	} else {
		phys.Vel.X = 0
	}

	if kind.Flies {
		if player.Y+player.H < obj.Y+1 {
			phys.Vel.Y = -kind.VerticalChaseSpeed
		} else if player.Y > obj.Y+obj.H-1 {
			phys.Vel.Y = kind.VerticalChaseSpeed
		} else {
			phys.Vel.Y = 0
		}
	}
}

// RespawnEnemy returns a pooled enemy to play at its spawn point with full
// health. It comes back off-screen; the next visibility check decides when
// it activates.
func RespawnEnemy(enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	obj := components.Object.Get(enemyEntry)
	phys := components.Physics.Get(enemyEntry)
	health := components.Health.Get(enemyEntry)

	enemy.State = cfg.EnemyOffScreen
	enemy.KnockbackTimer = 0
	enemy.RespawnTimer = 0
	health.Current = health.Max

	obj.X = enemy.RespawnPos.X
	obj.Y = enemy.RespawnPos.Y
	phys.Vel = gamemath.Vec2{}
	obj.Update()
}
