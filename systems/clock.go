package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

// UpdateClock computes the frame delta from wall-clock time. The delta is
// clamped so a stall (window drag, debugger pause) cannot tunnel entities
// through geometry.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	clock.Delta = now.Sub(clock.Previous).Seconds()
	clock.Previous = now

	if clock.Delta > cfg.Physics.MaxDelta {
		clock.Delta = cfg.Physics.MaxDelta
	}
}

// Delta returns the current frame delta in seconds.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
