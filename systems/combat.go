package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

// DamagePlayer applies damage to the player from a hit at source. The
// damage cooldown makes repeated hits in one window a no-op: no damage, no
// knockback, no event. A hit interrupts any dash in progress.
func DamagePlayer(e *ecs.ECS, playerEntry *donburi.Entry, damage int, source gamemath.Vec2) bool {
	player := components.Player.Get(playerEntry)
	if player.DamageCooldown > 0 {
		return false
	}

	player.KnockbackTimer = cfg.Player.KnockbackDuration
	player.DamageCooldown = cfg.Player.DamageCooldown
	player.DashTimer = 0
	player.IsDashing = false

	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	if vel, ok := gamemath.Knockback(obj.Box().Pos(), source, cfg.Combat.HorizontalKnockback, cfg.Combat.VerticalKnockback); ok {
		phys.Vel = vel
	}

	health := components.Health.Get(playerEntry)
	health.Current -= damage
	if health.Current <= 0 {
		emitEvent(e, components.Event{Kind: components.EventPlayerDied, Pos: obj.Box().Pos()})
	} else {
		emitEvent(e, components.Event{Kind: components.EventDamageTaken, Pos: obj.Box().Pos()})
	}
	return true
}

// DamageEnemy applies damage to an enemy from a hit at source. Returns
// false while the enemy's damage cooldown is active. A killed enemy leaves
// play immediately and starts its respawn countdown.
func DamageEnemy(e *ecs.ECS, enemyEntry *donburi.Entry, damage int, source gamemath.Vec2) bool {
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.DamageCooldown > 0 {
		return false
	}

	enemy.KnockbackTimer = cfg.Enemy.KnockbackDuration
	enemy.DamageCooldown = cfg.Enemy.DamageCooldown

	obj := components.Object.Get(enemyEntry)
	phys := components.Physics.Get(enemyEntry)
	if vel, ok := gamemath.Knockback(obj.Box().Pos(), source, cfg.Combat.HorizontalKnockback, cfg.Combat.VerticalKnockback); ok {
		phys.Vel = vel
	}

	health := components.Health.Get(enemyEntry)
	health.Current -= damage
	if health.Current <= 0 {
		enemy.State = cfg.EnemyDeadPendingRespawn
		enemy.RespawnTimer = cfg.Enemy.RespawnDelay
		emitEvent(e, components.Event{Kind: components.EventEnemyDied, Pos: obj.Box().Pos()})
	} else {
		emitEvent(e, components.Event{Kind: components.EventDamageTaken, Pos: obj.Box().Pos()})
	}
	return true
}

// UpdateCombat resolves the player's active attack hitbox against enemies
// and coins. Runs after UpdatePlayer so the hitbox tracks this frame's
// position.
func UpdateCombat(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.IsAttacking {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	playerPhys := components.Physics.Get(playerEntry)

	tags.Enemy.Each(e.World, func(enemyEntry *donburi.Entry) {
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.State != cfg.EnemyActive {
			return
		}
		enemyObj := components.Object.Get(enemyEntry)
		if !gamemath.Overlaps(enemyObj.Box(), player.AttackBox) {
			return
		}

		tookDamage := DamageEnemy(e, enemyEntry, cfg.Combat.AttackDamage, playerObj.Box().Pos())

		// A landed down-air bounces the player off the target and refunds
		// the attack cooldown, chaining pogo hops. Holding jump suppresses
		// the bounce so a rising attack doesn't relaunch the player.
		if tookDamage && !player.IsJumping && player.AttackDirection == cfg.AttackDown {
			playerPhys.Vel.Y = cfg.Player.JumpVelocity * cfg.Combat.PogoBounceScale
			player.AttackCooldown = 0
		}
	})

	tags.Coin.Each(e.World, func(coinEntry *donburi.Entry) {
		coin := components.Coin.Get(coinEntry)
		if coin.Collected {
			return
		}
		coinObj := components.Object.Get(coinEntry)
		if !gamemath.Overlaps(coinObj.Box(), player.AttackBox) {
			return
		}

		coin.Collected = true
		health := components.Health.Get(playerEntry)
		health.Current = health.Max
		emitEvent(e, components.Event{Kind: components.EventCoinCollected, Pos: coinObj.Box().Pos()})

		if allCoinsCollected(e) {
			emitEvent(e, components.Event{Kind: components.EventAllCoinsCollected})
		}
	})
}

func allCoinsCollected(e *ecs.ECS) bool {
	all := true
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		if !components.Coin.Get(entry).Collected {
			all = false
		}
	})
	return all
}
