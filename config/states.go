package config

// RoundStateID identifies a phase of the round transition state machine.
type RoundStateID int

const (
	RoundPlaying RoundStateID = iota
	RoundFadingOut
	RoundResetApplied
	RoundFadingIn
)

// EnemyStateID identifies an enemy lifecycle state. Enemies are pooled:
// they toggle between these states and are never removed from the world.
type EnemyStateID int

const (
	EnemyOffScreen EnemyStateID = iota
	EnemyActive
	EnemyDeadPendingRespawn
)

// EnemyKind selects an enemy tracking behavior.
type EnemyKind int

const (
	KindMelee EnemyKind = iota
	KindFlying
)

// ParseEnemyKind maps a level-data kind name to an EnemyKind.
// Unknown names default to melee.
func ParseEnemyKind(name string) EnemyKind {
	if name == "Flying" {
		return KindFlying
	}
	return KindMelee
}

// AttackDirection is the direction of the player's active attack hitbox.
type AttackDirection int

const (
	AttackRight AttackDirection = iota
	AttackLeft
	AttackUp
	AttackDown
)
