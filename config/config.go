package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// WindowConfig contains window and viewport dimensions.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains global physics values shared by every movable entity.
type PhysicsConfig struct {
	Gravity          float64 // downward acceleration, units/s^2
	TerminalVelocity float64 // max downward speed, units/s
	ShortHopGravity  float64 // extra gravity multiplier while rising with jump released
	MaxDelta         float64 // per-frame delta time ceiling, seconds
	CoyoteTime       float64 // grace window after leaving ground, seconds
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed        float64 // held-direction horizontal speed, units/s
	JumpVelocity float64 // negative = upward

	// Dash
	DashDuration   float64
	DashCooldown   float64
	DashSpeedScale float64 // dash speed = Speed * DashSpeedScale * remaining time

	// Attack
	AttackDuration float64
	AttackCooldown float64

	// Damage
	MaxHealth         int
	DamageCooldown    float64
	KnockbackDuration float64
}

// EnemyKindConfig contains per-kind enemy tuning.
type EnemyKindConfig struct {
	ChaseSpeed         float64 // horizontal tracking speed, units/s
	VerticalChaseSpeed float64 // vertical tracking speed (flying only)
	Flies              bool    // gravity-exempt, tracks both axes
}

// EnemyConfig contains enemy system configuration.
type EnemyConfig struct {
	Kinds map[EnemyKind]EnemyKindConfig

	RespawnDelay      float64 // seconds between death and respawn
	DamageCooldown    float64
	KnockbackDuration float64
	ContactDamage     int // damage dealt to the player on body contact
}

// CombatConfig contains combat-related configuration values.
type CombatConfig struct {
	AttackDamage        int     // damage the player's attack deals
	HorizontalKnockback float64 // knockback force scale
	VerticalKnockback   float64 // forced pop-up velocity (negative = upward)
	PogoBounceScale     float64 // down-air bounce = JumpVelocity * scale
	DamageFlashFloor    float64 // entity flashes while damage cooldown exceeds this
}

// CameraConfig contains camera follow behavior.
type CameraConfig struct {
	Smoothing float64 // first-order lag factor, per second
}

// FadeConfig contains the round transition fade.
type FadeConfig struct {
	Speed    float64 // alpha units per second
	MaxAlpha float64
}

// CoinConfig contains coin dimensions.
type CoinConfig struct {
	Size float64
}

var (
	Window  WindowConfig
	Physics PhysicsConfig
	Player  PlayerConfig
	Enemy   EnemyConfig
	Combat  CombatConfig
	Camera  CameraConfig
	Fade    FadeConfig
	Coin    CoinConfig
)

func init() {
	Window = WindowConfig{
		Width:  1400,
		Height: 800,
		Title:  "Ravine",
	}

	Physics = PhysicsConfig{
		Gravity:          1800,
		TerminalVelocity: 1200,
		ShortHopGravity:  3,
		MaxDelta:         0.05,
		CoyoteTime:       0.05,
	}

	Player = PlayerConfig{
		Width:             55,
		Height:            100,
		Speed:             300,
		JumpVelocity:      -960,
		DashDuration:      0.3,
		DashCooldown:      0.75,
		DashSpeedScale:    15,
		AttackDuration:    0.5,
		AttackCooldown:    0.75,
		MaxHealth:         10,
		DamageCooldown:    0.75,
		KnockbackDuration: 0.1,
	}

	Enemy = EnemyConfig{
		Kinds: map[EnemyKind]EnemyKindConfig{
			KindMelee: {
				ChaseSpeed: 150,
			},
			KindFlying: {
				ChaseSpeed:         100,
				VerticalChaseSpeed: 100,
				Flies:              true,
			},
		},
		RespawnDelay:      10,
		DamageCooldown:    0.75,
		KnockbackDuration: 0.1,
		ContactDamage:     1,
	}

	Combat = CombatConfig{
		AttackDamage:        2,
		HorizontalKnockback: 600,
		VerticalKnockback:   -200,
		PogoBounceScale:     1.5,
		DamageFlashFloor:    0.25,
	}

	Camera = CameraConfig{
		Smoothing: 15,
	}

	Fade = FadeConfig{
		Speed:    300,
		MaxAlpha: 255,
	}

	Coin = CoinConfig{
		Size: 50,
	}
}
