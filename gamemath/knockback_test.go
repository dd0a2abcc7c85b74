package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnockbackPushesAwayFromSource(t *testing.T) {
	vel, ok := Knockback(Vec2{X: 100, Y: 0}, Vec2{X: 0, Y: 100}, 600, -200)
	require.True(t, ok)

	assert.Positive(t, vel.X, "hit from the left pushes right")
	assert.Negative(t, vel.Y, "hit from below pushes up")
	assert.InDelta(t, 600, math.Hypot(vel.X, vel.Y), 1e-9, "force is the vector magnitude")
}

func TestKnockbackForcesVerticalPop(t *testing.T) {
	// A perfectly horizontal hit would leave the target sliding along the
	// ground; the vertical component gets replaced with the pop-up.
	vel, ok := Knockback(Vec2{X: 100, Y: 50}, Vec2{X: 0, Y: 50}, 600, -200)
	require.True(t, ok)

	assert.InDelta(t, 600, vel.X, 1e-9)
	assert.Equal(t, -200.0, vel.Y)
}

func TestKnockbackNearHorizontalStillPops(t *testing.T) {
	// Vertical speed just under the threshold is also replaced.
	vel, ok := Knockback(Vec2{X: 1000, Y: 1}, Vec2{X: 0, Y: 0}, 600, -200)
	require.True(t, ok)
	assert.Equal(t, -200.0, vel.Y)
}

func TestKnockbackCoincidentPointsIsNoOp(t *testing.T) {
	vel, ok := Knockback(Vec2{X: 5, Y: 5}, Vec2{X: 5, Y: 5}, 600, -200)
	assert.False(t, ok)
	assert.Equal(t, Vec2{}, vel)
}
