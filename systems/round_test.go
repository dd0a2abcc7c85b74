package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

func roundData(t *testing.T, e *ecs.ECS) *components.RoundData {
	t.Helper()
	entry, ok := components.Round.First(e.World)
	require.True(t, ok)
	return components.Round.Get(entry)
}

func audioData(t *testing.T, e *ecs.ECS) *components.AudioData {
	t.Helper()
	entry, ok := components.Audio.First(e.World)
	require.True(t, ok)
	return components.Audio.Get(entry)
}

// fadeDur is how long one fade leg takes at the configured speed.
func fadeDur() float64 {
	return cfg.Fade.MaxAlpha / cfg.Fade.Speed
}

func TestLethalDamageStartsDeathFade(t *testing.T) {
	e, player := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	DamagePlayer(e, player, cfg.Player.MaxHealth, gamemath.Vec2{X: 50, Y: 600})
	UpdateRound(e)

	round := roundData(t, e)
	assert.Equal(t, cfg.RoundFadingOut, round.State)
	assert.False(t, round.HasWon)

	audio := audioData(t, e)
	assert.True(t, audio.MusicFadeOut)
	assert.Contains(t, audio.PendingSFX, cfg.SoundDeath)
}

func TestDeathResetRestoresWorld(t *testing.T) {
	e, player := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	enemy := spawnTestEnemy(t, e, gamemath.Box{X: 800, Y: 300, W: 60, H: 70}, cfg.KindMelee, 2)
	coin := spawnTestCoin(t, e, 400, 650)
	components.Coin.Get(coin).Collected = true
	require.True(t, DamageEnemy(e, enemy, 2, gamemath.Vec2{X: 700, Y: 300}))

	// Move the player somewhere else and kill them.
	playerObject(player).X = 900
	playerObject(player).Update()
	DamagePlayer(e, player, cfg.Player.MaxHealth, gamemath.Vec2{X: 950, Y: 600})

	UpdateRound(e)
	require.Equal(t, cfg.RoundFadingOut, roundData(t, e).State)

	// Run the fade-out to completion.
	setDelta(t, e, fadeDur())
	UpdateRound(e)
	round := roundData(t, e)
	require.Equal(t, cfg.RoundResetApplied, round.State)

	// The reset happened under full cover.
	obj := playerObject(player)
	assert.Equal(t, 100.0, obj.X, "player back at the spawn point")
	assert.Equal(t, 250.0, obj.Y)
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)
	assert.Equal(t, 0.0, playerData(player).DamageCooldown)

	assert.False(t, components.Coin.Get(coin).Collected, "coins restored")
	assert.NotEqual(t, cfg.EnemyDeadPendingRespawn, components.Enemy.Get(enemy).State)
	assert.Equal(t, components.Health.Get(enemy).Max, components.Health.Get(enemy).Current)

	// Next frame starts the fade-in; when it finishes play resumes and the
	// music comes back.
	UpdateRound(e)
	assert.Equal(t, cfg.RoundFadingIn, roundData(t, e).State)

	UpdateRound(e)
	assert.Equal(t, cfg.RoundPlaying, roundData(t, e).State)
	assert.Equal(t, float32(0), roundData(t, e).FadeAlpha)
	assert.True(t, audioData(t, e).MusicFadeIn)
	assert.False(t, roundData(t, e).Terminated)
}

func TestWinEndsSessionAtFullCover(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	emitEvent(e, components.Event{Kind: components.EventAllCoinsCollected})
	UpdateRound(e)

	round := roundData(t, e)
	require.Equal(t, cfg.RoundFadingOut, round.State)
	assert.True(t, round.HasWon)

	setDelta(t, e, fadeDur())
	UpdateRound(e)
	require.Equal(t, cfg.RoundResetApplied, roundData(t, e).State)

	UpdateRound(e)
	assert.True(t, roundData(t, e).Terminated)
	assert.Equal(t, cfg.RoundResetApplied, roundData(t, e).State, "no fade-in after a win")
}

func TestFadeAlphaAdvancesWithDelta(t *testing.T) {
	e, player := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	DamagePlayer(e, player, cfg.Player.MaxHealth, gamemath.Vec2{X: 50, Y: 600})
	UpdateRound(e)

	// The fade has been running for 0.51s of simulated time by now.
	setDelta(t, e, 0.5)
	UpdateRound(e)
	assert.InDelta(t, cfg.Fade.Speed*0.51, float64(roundData(t, e).FadeAlpha), 0.5)
}

func TestRoundGateSuspendsSimulation(t *testing.T) {
	e, player := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	calls := 0
	gated := WithRoundGate(func(*ecs.ECS) { calls++ })

	gated(e)
	assert.Equal(t, 1, calls, "runs while playing")

	DamagePlayer(e, player, cfg.Player.MaxHealth, gamemath.Vec2{X: 50, Y: 600})
	UpdateRound(e)
	require.Equal(t, cfg.RoundFadingOut, roundData(t, e).State)

	gated(e)
	assert.Equal(t, 1, calls, "suspended during the fade")
}

func TestEventsQueueDrainedOncePerFrame(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	emitEvent(e, components.Event{Kind: components.EventCoinCollected})
	emitEvent(e, components.Event{Kind: components.EventDamageTaken})
	UpdateRound(e)

	audio := audioData(t, e)
	assert.Equal(t, []cfg.SoundID{cfg.SoundCoin, cfg.SoundDamage}, audio.PendingSFX)

	// Queue is empty afterwards; a second pass adds nothing.
	UpdateRound(e)
	assert.Len(t, audio.PendingSFX, 2)
}

func TestSecondDeathEventDoesNotRestartFade(t *testing.T) {
	e, _ := newTestWorld(t, 100, 600)
	setDelta(t, e, 0.01)

	emitEvent(e, components.Event{Kind: components.EventPlayerDied})
	UpdateRound(e)
	require.Equal(t, cfg.RoundFadingOut, roundData(t, e).State)

	setDelta(t, e, 0.5)
	UpdateRound(e)
	alpha := roundData(t, e).FadeAlpha
	require.Positive(t, alpha)

	// Another death event mid-fade leaves the running fade alone.
	emitEvent(e, components.Event{Kind: components.EventPlayerDied})
	setDelta(t, e, 0.0)
	UpdateRound(e)
	assert.Equal(t, alpha, roundData(t, e).FadeAlpha)
	assert.Equal(t, cfg.RoundFadingOut, roundData(t, e).State)
}
