package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is a singleton holding the frame delta. Delta is computed once
// per frame from wall-clock time and clamped, then read by every system
// that frame.
type ClockData struct {
	Delta    float64
	Previous time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
