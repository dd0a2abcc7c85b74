package gamemath

import "math"

// minVerticalKnockback is the speed below which a knockback is treated as
// purely horizontal and replaced with a fixed upward pop.
const minVerticalKnockback = 10.0

// Knockback returns the velocity to apply to an entity at pos that was hit
// from source. The direction is normalized away from the source and scaled
// by force; a near-horizontal result gets its vertical component replaced
// with popUp so the target always lifts off the ground. If source and pos
// coincide the zero vector is returned and callers leave velocity unchanged.
func Knockback(pos, source Vec2, force, popUp float64) (Vec2, bool) {
	dir := Vec2{X: pos.X - source.X, Y: pos.Y - source.Y}
	length := math.Sqrt(dir.X*dir.X + dir.Y*dir.Y)
	if length <= 0 {
		return Vec2{}, false
	}

	vel := Vec2{
		X: dir.X / length * force,
		Y: dir.Y / length * force,
	}
	if math.Abs(vel.Y) < minVerticalKnockback {
		vel.Y = popUp
	}
	return vel, true
}
