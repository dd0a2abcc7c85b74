package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowgrove/ravine/gamemath"
)

// EventKind identifies a simulation event emitted during the frame.
type EventKind int

const (
	EventDamageTaken EventKind = iota
	EventPlayerDied
	EventEnemyDied
	EventCoinCollected
	EventAllCoinsCollected
)

// Event is a fact reported outward by an entity update. Entities never hold
// a reference back to the orchestrator; the round and audio systems drain
// the queue at the end of the frame.
type Event struct {
	Kind EventKind
	Pos  gamemath.Vec2
}

// EventsData is the singleton per-frame event queue.
type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()
