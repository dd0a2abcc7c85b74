package systems

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/leveldata"
	"github.com/hollowgrove/ravine/systems/factory"
)

// testLevel is a small closed arena: a ground strip at y=700 and a wall on
// the right half, level 1000 wide.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		Width:  1000,
		Height: 800,
		Platforms: []leveldata.PlatformSpawn{
			{Box: gamemath.Box{X: 0, Y: 700, W: 1000, H: 100}, FullWidth: true},
			{Box: gamemath.Box{X: 600, Y: 500, W: 50, H: 200}},
		},
		PlayerSpawn: gamemath.Vec2{X: 100, Y: 250},
	}
}

// newTestWorld builds a world with all singletons, the test level, and a
// player at the given position with full health.
func newTestWorld(t *testing.T, playerX, playerY float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateEvents(e)
	factory.CreateInput(e)
	factory.CreateRound(e)
	factory.CreateAudio(e)
	factory.CreateLevel(e, testLevel())

	player := factory.CreatePlayer(e, playerX, playerY, cfg.Player.MaxHealth)
	factory.CreateCamera(e)

	return e, player
}

// setDelta fixes the frame delta so tests can step deterministic amounts
// of simulated time without touching the wall clock.
func setDelta(t *testing.T, e *ecs.ECS, dt float64) {
	t.Helper()
	entry, ok := components.Clock.First(e.World)
	require.True(t, ok)
	components.Clock.Get(entry).Delta = dt
}

// press marks an action held this frame. Call release to end it.
func press(t *testing.T, e *ecs.ECS, actions ...cfg.ActionID) {
	t.Helper()
	entry, ok := components.Input.First(e.World)
	require.True(t, ok)
	input := components.Input.Get(entry)
	input.Previous = input.Current
	for _, id := range actions {
		input.Current[id] = true
	}
}

// release clears all held actions, shifting them into the previous frame.
func release(t *testing.T, e *ecs.ECS) {
	t.Helper()
	entry, ok := components.Input.First(e.World)
	require.True(t, ok)
	input := components.Input.Get(entry)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

// spawnTestEnemy adds an active enemy directly, bypassing visibility.
func spawnTestEnemy(t *testing.T, e *ecs.ECS, box gamemath.Box, kind cfg.EnemyKind, health int) *donburi.Entry {
	t.Helper()
	enemy := factory.CreateEnemy(e, leveldata.EnemySpawn{Box: box, Kind: kind, Health: health})
	components.Enemy.Get(enemy).State = cfg.EnemyActive
	return enemy
}

// spawnTestCoin adds an uncollected coin.
func spawnTestCoin(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	return factory.CreateCoin(e, x, y)
}

func drainedEvents(t *testing.T, e *ecs.ECS) []components.Event {
	t.Helper()
	entry, ok := components.Events.First(e.World)
	require.True(t, ok)
	events := components.Events.Get(entry)
	out := append([]components.Event(nil), events.Pending...)
	events.Pending = events.Pending[:0]
	return out
}

func playerData(player *donburi.Entry) *components.PlayerData {
	return components.Player.Get(player)
}

func playerObject(player *donburi.Entry) *components.ObjectData {
	return components.Object.Get(player)
}

func playerPhysics(player *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(player)
}
