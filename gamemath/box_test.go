package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, Overlaps(a, Box{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, Overlaps(a, Box{X: -5, Y: -5, W: 10, H: 10}))
	assert.True(t, Overlaps(a, a), "identical boxes overlap")

	assert.False(t, Overlaps(a, Box{X: 20, Y: 0, W: 10, H: 10}))
	assert.False(t, Overlaps(a, Box{X: 0, Y: 30, W: 10, H: 10}))
}

func TestOverlapsEdgeTouchDoesNotCollide(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	// Sharing an edge exactly is not an overlap.
	assert.False(t, Overlaps(a, Box{X: 10, Y: 0, W: 10, H: 10}))
	assert.False(t, Overlaps(a, Box{X: 0, Y: 10, W: 10, H: 10}))
	assert.False(t, Overlaps(a, Box{X: -10, Y: 0, W: 10, H: 10}))

	// One unit inside is.
	assert.True(t, Overlaps(a, Box{X: 9, Y: 0, W: 10, H: 10}))
}

func TestBoxCenter(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 40, H: 60}
	assert.Equal(t, Vec2{X: 30, Y: 50}, b.Center())
	assert.Equal(t, Vec2{X: 10, Y: 20}, b.Pos())
}
