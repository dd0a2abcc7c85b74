package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
)

// CameraData follows a target with first-order lag. Position is the
// top-left corner of the view in world space.
type CameraData struct {
	Position gamemath.Vec2
	Target   gamemath.Vec2
}

// Viewport returns the camera's world-space view rectangle, used both for
// rendering offsets and for enemy visibility gating.
func (c *CameraData) Viewport() gamemath.Box {
	return gamemath.Box{
		X: c.Position.X,
		Y: c.Position.Y,
		W: float64(cfg.Window.Width),
		H: float64(cfg.Window.Height),
	}
}

var Camera = donburi.NewComponentType[CameraData]()
