package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

// WithRoundGate wraps a simulation system so it only runs while the round
// is in normal play. During fade transitions the whole simulation holds
// still and only the round system advances.
func WithRoundGate(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if entry, ok := components.Round.First(e.World); ok {
			if components.Round.Get(entry).State != cfg.RoundPlaying {
				return
			}
		}
		fn(e)
	}
}

// UpdateRound drains the frame's event queue and drives the fade state
// machine. It runs every frame, gated or not: it is the only system that
// advances while the screen fades.
func UpdateRound(e *ecs.ECS) {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)

	drainEvents(e, round)

	dt := Delta(e)
	switch round.State {
	case cfg.RoundFadingOut:
		alpha, finished := round.Fade.Update(float32(dt))
		round.FadeAlpha = alpha
		if finished {
			applyRoundReset(e, round)
			round.State = cfg.RoundResetApplied
		}

	case cfg.RoundResetApplied:
		// The reset happened under full cover last frame; either the
		// session is over or the screen fades back in.
		if round.Terminated {
			return
		}
		fadeIn := float32(cfg.Fade.MaxAlpha) / float32(cfg.Fade.Speed)
		round.Fade = gween.New(float32(cfg.Fade.MaxAlpha), 0, fadeIn, ease.Linear)
		round.State = cfg.RoundFadingIn

	case cfg.RoundFadingIn:
		alpha, finished := round.Fade.Update(float32(dt))
		round.FadeAlpha = alpha
		if finished {
			round.FadeAlpha = 0
			round.State = cfg.RoundPlaying
			requestMusicFadeIn(e)
		}
	}
}

// TriggerPlayerDeath starts the death fade without dealing damage. Used
// when a loaded save has the player already at zero health.
func TriggerPlayerDeath(e *ecs.ECS) {
	emitEvent(e, components.Event{Kind: components.EventPlayerDied})
}

// drainEvents maps simulation events to sound cues and round transitions.
func drainEvents(e *ecs.ECS, round *components.RoundData) {
	eventsEntry, ok := components.Events.First(e.World)
	if !ok {
		return
	}
	events := components.Events.Get(eventsEntry)

	for _, ev := range events.Pending {
		switch ev.Kind {
		case components.EventDamageTaken:
			queueSFX(e, cfg.SoundDamage)
		case components.EventCoinCollected:
			queueSFX(e, cfg.SoundCoin)
		case components.EventEnemyDied:
			queueSFX(e, cfg.SoundDeath)
		case components.EventPlayerDied:
			queueSFX(e, cfg.SoundDeath)
			beginFadeOut(e, round)
		case components.EventAllCoinsCollected:
			round.HasWon = true
			beginFadeOut(e, round)
		}
	}
	events.Pending = events.Pending[:0]
}

func beginFadeOut(e *ecs.ECS, round *components.RoundData) {
	if round.State != cfg.RoundPlaying {
		return
	}
	dur := float32(cfg.Fade.MaxAlpha) / float32(cfg.Fade.Speed)
	round.Fade = gween.New(0, float32(cfg.Fade.MaxAlpha), dur, ease.Linear)
	round.State = cfg.RoundFadingOut
	requestMusicFadeOut(e)
}

// applyRoundReset runs once while the screen is fully covered. A death
// reset puts the player, every enemy, and every coin back to their initial
// state; a win ends the session instead of restoring the world.
func applyRoundReset(e *ecs.ECS, round *components.RoundData) {
	resetPlayer(e)

	if round.HasWon {
		round.Terminated = true
		return
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		RespawnEnemy(entry)
	})
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		components.Coin.Get(entry).Collected = false
	})
}

func resetPlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	spawn := gamemath.Vec2{}
	if levelEntry, ok := components.Level.First(e.World); ok {
		spawn = components.Level.Get(levelEntry).Level.PlayerSpawn
	}

	obj.X = spawn.X
	obj.Y = spawn.Y
	obj.Update()
	phys.Vel = gamemath.Vec2{}

	player.DamageCooldown = 0
	player.KnockbackTimer = 0
	player.IsDashing = false
	player.IsAttacking = false
	health.Current = health.Max

	// Snap the camera so the fade-in opens on the spawn, not a pan.
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = 0
		camera.Position.Y = obj.Y + obj.H/2 - float64(cfg.Window.Height)/1.8
		camera.Target = camera.Position
	}
}
