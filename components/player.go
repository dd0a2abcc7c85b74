package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

// PlayerData holds the player's concurrent state flags and timers.
// All timers are in seconds and tick down with the frame delta.
type PlayerData struct {
	FacingLeft bool

	// Dash. CanDash resets only on grounding, so only one air dash per jump.
	CanDash      bool
	IsDashing    bool
	DashTimer    float64
	DashCooldown float64

	// Attack. The hitbox is repositioned every frame while the attack is
	// active; it does not sweep.
	IsAttacking     bool
	AttackDirection cfg.AttackDirection
	AttackTimer     float64
	AttackCooldown  float64
	AttackBox       gamemath.Box

	// Ground contact
	IsGrounded  bool
	CoyoteTimer float64
	IsJumping   bool

	// Damage
	DamageCooldown float64
	KnockbackTimer float64
}

var Player = donburi.NewComponentType[PlayerData]()
