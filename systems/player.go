package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

// UpdatePlayer applies input to the player, integrates physics, resolves
// collision, and repositions the attack hitbox. Knockback overrides input:
// while the knockback timer runs the player keeps the velocity the hit
// gave them and gravity is suspended.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	phys := components.Physics.Get(playerEntry)
	dt := Delta(e)

	handlePlayerInput(e, player, phys)

	if player.KnockbackTimer <= 0 {
		if player.IsDashing {
			// Dash speed scales with the remaining timer, so the dash
			// starts fast and decays.
			speed := cfg.Player.Speed * cfg.Player.DashSpeedScale * player.DashTimer
			if player.FacingLeft {
				phys.Vel.X = -speed
			} else {
				phys.Vel.X = speed
			}

			player.DashTimer -= dt
			if player.DashTimer <= 0 {
				player.IsDashing = false
			}
		}

		if player.IsAttacking {
			player.AttackTimer -= dt
			if player.AttackTimer <= 0 {
				player.IsAttacking = false
			}
		}

		phys.Vel.Y += cfg.Physics.Gravity * dt

		// Released jump while rising shortens the hop with extra gravity.
		if !player.IsJumping && phys.Vel.Y < 0 {
			phys.Vel.Y += cfg.Physics.Gravity * dt * cfg.Physics.ShortHopGravity
		}

		if phys.Vel.Y > cfg.Physics.TerminalVelocity {
			phys.Vel.Y = cfg.Physics.TerminalVelocity
		}
	} else {
		player.KnockbackTimer -= dt
	}

	result := moveAndCollide(obj, phys, dt)

	// Keep the player inside the level.
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).Level
		if obj.X < 0 {
			obj.X = 0
			phys.Vel.X = 0
			obj.Update()
		} else if obj.X+obj.W > level.Width {
			obj.X = level.Width - obj.W
			phys.Vel.X = 0
			obj.Update()
		}
	}

	// Landing refreshes the grounded flag directly; walking off an edge
	// leaves a short coyote window where a jump still works.
	if result.Landed {
		player.IsGrounded = true
		player.CoyoteTimer = cfg.Physics.CoyoteTime
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer -= dt
		player.IsGrounded = true
	} else {
		player.IsGrounded = false
	}

	// Camera follows the player's center, biased slightly above it.
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Target.X = obj.X + obj.W/2 - float64(cfg.Window.Width)/2
		camera.Target.Y = obj.Y + obj.H/2 - float64(cfg.Window.Height)/1.8
	}

	if player.IsAttacking {
		player.AttackBox = attackBoxFor(player.AttackDirection, obj.Box())
	}

	if player.DashCooldown > 0 {
		player.DashCooldown -= dt
	}
	if player.AttackCooldown > 0 {
		player.AttackCooldown -= dt
	}
	if player.DamageCooldown > 0 {
		player.DamageCooldown -= dt
	}

	// One air dash per jump: the charge only comes back on the ground.
	if player.IsGrounded && !player.CanDash {
		player.CanDash = true
	}
}

func handlePlayerInput(e *ecs.ECS, player *components.PlayerData, phys *components.PhysicsData) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if input.Action(cfg.ActionDash).JustPressed && player.CanDash && player.DashCooldown <= 0 {
		player.IsDashing = true
		player.CanDash = false
		player.DashTimer = cfg.Player.DashDuration
		player.DashCooldown = cfg.Player.DashCooldown
	}

	// Dashing and knockback both lock steering and jumping.
	if !player.IsDashing && player.KnockbackTimer <= 0 {
		phys.Vel.X = 0

		if input.Action(cfg.ActionMoveLeft).Pressed {
			player.FacingLeft = true
			phys.Vel.X = -cfg.Player.Speed
		}
		if input.Action(cfg.ActionMoveRight).Pressed {
			player.FacingLeft = false
			phys.Vel.X = cfg.Player.Speed
		}

		if input.Action(cfg.ActionJump).Pressed {
			if player.IsGrounded && !player.IsJumping {
				phys.Vel.Y = cfg.Player.JumpVelocity
				player.IsJumping = true
			}
		} else {
			player.IsJumping = false
		}
	}

	if input.Action(cfg.ActionAttack).JustPressed && !player.IsAttacking && player.AttackCooldown <= 0 {
		player.IsAttacking = true
		player.AttackTimer = cfg.Player.AttackDuration
		player.AttackCooldown = cfg.Player.AttackCooldown

		// Up wins over down, and a down attack only triggers airborne;
		// otherwise the attack follows the facing.
		switch {
		case input.Action(cfg.ActionMoveUp).Pressed:
			player.AttackDirection = cfg.AttackUp
		case input.Action(cfg.ActionMoveDown).Pressed && !player.IsGrounded:
			player.AttackDirection = cfg.AttackDown
		case player.FacingLeft:
			player.AttackDirection = cfg.AttackLeft
		default:
			player.AttackDirection = cfg.AttackRight
		}
	}
}

// attackBoxFor places the square attack hitbox against the given side of
// the player's body.
func attackBoxFor(dir cfg.AttackDirection, body gamemath.Box) gamemath.Box {
	size := cfg.Player.Width
	box := gamemath.Box{W: size, H: size}
	switch dir {
	case cfg.AttackUp:
		box.X = body.X
		box.Y = body.Y - box.H
	case cfg.AttackDown:
		box.X = body.X
		box.Y = body.Y + body.H
	case cfg.AttackLeft:
		box.X = body.X - box.W
		box.Y = body.Y + box.H/2
	default:
		box.X = body.X + box.W
		box.Y = body.Y + box.H/2
	}
	return box
}
