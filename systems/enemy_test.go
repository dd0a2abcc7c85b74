package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

func TestEnemyVisibilityGating(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	// Viewport covers the whole test level, so an in-level enemy activates.
	onScreen := spawnTestEnemy(t, e, gamemath.Box{X: 800, Y: 630, W: 60, H: 70}, cfg.KindMelee, 4)
	components.Enemy.Get(onScreen).State = cfg.EnemyOffScreen

	UpdateEnemies(e)
	assert.Equal(t, cfg.EnemyActive, components.Enemy.Get(onScreen).State)

	// Push the camera far away; the enemy suspends again.
	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	components.Camera.Get(cameraEntry).Position = gamemath.Vec2{X: 10000, Y: 0}

	UpdateEnemies(e)
	assert.Equal(t, cfg.EnemyOffScreen, components.Enemy.Get(onScreen).State)
}

func TestOffScreenEnemyDoesNotMove(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.05)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 800, Y: 300, W: 60, H: 70}, cfg.KindMelee, 4)
	cameraEntry, _ := components.Camera.First(e.World)
	components.Camera.Get(cameraEntry).Position = gamemath.Vec2{X: 10000, Y: 0}

	UpdateEnemies(e)
	obj := components.Object.Get(enemy)
	assert.Equal(t, 800.0, obj.X)
	assert.Equal(t, 300.0, obj.Y, "no gravity while suspended")
}

func TestMeleeEnemyTracksHorizontallyOnly(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 500, Y: 630, W: 60, H: 70}, cfg.KindMelee, 4)
	UpdateEnemies(e)

	phys := components.Physics.Get(enemy)
	kind := cfg.Enemy.Kinds[cfg.KindMelee]
	assert.Equal(t, -kind.ChaseSpeed, phys.Vel.X, "player is to the left")
	assert.False(t, phys.GravityExempt)
}

func TestFlyingEnemyTracksBothAxes(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 500, Y: 100, W: 50, H: 50}, cfg.KindFlying, 3)
	UpdateEnemies(e)

	phys := components.Physics.Get(enemy)
	kind := cfg.Enemy.Kinds[cfg.KindFlying]
	assert.Equal(t, -kind.ChaseSpeed, phys.Vel.X)
	assert.Equal(t, kind.VerticalChaseSpeed, phys.Vel.Y, "player is below")
	assert.True(t, phys.GravityExempt)
}

func TestEnemyStopsTrackingWhenAligned(t *testing.T) {
	e, _ := newTestWorld(t, 500, 600)
	setDelta(t, e, 0.01)

	// Enemy directly on top of the player horizontally.
	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 500, Y: 400, W: 55, H: 55}, cfg.KindMelee, 4)
	UpdateEnemies(e)

	assert.Equal(t, 0.0, components.Physics.Get(enemy).Vel.X)
}

func TestEnemyDeathAndRespawnRoundTrip(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 800, Y: 300, W: 60, H: 70}, cfg.KindMelee, 2)
	hit := DamageEnemy(e, enemy, cfg.Combat.AttackDamage, gamemath.Vec2{X: 700, Y: 300})
	require.True(t, hit)

	data := components.Enemy.Get(enemy)
	assert.Equal(t, cfg.EnemyDeadPendingRespawn, data.State)
	assert.Equal(t, cfg.Enemy.RespawnDelay, data.RespawnTimer)

	events := drainedEvents(t, e)
	require.Len(t, events, 1)
	assert.Equal(t, components.EventEnemyDied, events[0].Kind)

	// Knock the corpse's position around to prove respawn restores it.
	obj := components.Object.Get(enemy)
	obj.X = 50
	obj.Update()

	// Run the countdown out.
	setDelta(t, e, cfg.Enemy.RespawnDelay/2)
	UpdateEnemies(e)
	assert.Equal(t, cfg.EnemyDeadPendingRespawn, data.State)
	UpdateEnemies(e)

	health := components.Health.Get(enemy)
	assert.Equal(t, health.Max, health.Current)
	assert.Equal(t, 800.0, obj.X, "respawns at the original spawn point")
	assert.Equal(t, 300.0, obj.Y)
	assert.NotEqual(t, cfg.EnemyDeadPendingRespawn, data.State)
}

func TestEnemyDamageCooldown(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 800, Y: 300, W: 60, H: 70}, cfg.KindMelee, 10)
	health := components.Health.Get(enemy)

	require.True(t, DamageEnemy(e, enemy, 2, gamemath.Vec2{X: 700, Y: 300}))
	assert.False(t, DamageEnemy(e, enemy, 2, gamemath.Vec2{X: 700, Y: 300}))
	assert.Equal(t, 8, health.Current)
}

func TestEnemyContactDamagesPlayer(t *testing.T) {
	e, player := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.001)

	// Enemy overlapping the player's body.
	spawnTestEnemy(t, e, gamemath.Box{X: 110, Y: 620, W: 60, H: 70}, cfg.KindMelee, 4)
	UpdateEnemies(e)

	health := components.Health.Get(player)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Enemy.ContactDamage, health.Current)
	assert.Positive(t, playerData(player).DamageCooldown)
}
