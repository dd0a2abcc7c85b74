package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowgrove/ravine/gamemath"
)

type PhysicsData struct {
	Vel gamemath.Vec2

	// GravityExempt entities (flying enemies) skip gravity and the
	// terminal velocity clamp entirely.
	GravityExempt bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
