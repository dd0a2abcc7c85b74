package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
)

// emitEvent appends to the frame's event queue. The round system drains the
// queue once per frame; emitters never act on the round or audio state
// directly.
func emitEvent(e *ecs.ECS, ev components.Event) {
	entry, ok := components.Events.First(e.World)
	if !ok {
		return
	}
	events := components.Events.Get(entry)
	events.Pending = append(events.Pending, ev)
}
