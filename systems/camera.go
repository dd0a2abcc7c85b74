package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

// UpdateCamera moves the camera toward its target with first-order lag.
// The target is clamped to the level bounds before smoothing so the view
// never shows past the level edges. Runs after UpdatePlayer, which sets
// the target.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level

	maxX := level.Width - float64(cfg.Window.Width)
	if camera.Target.X < 0 {
		camera.Target.X = 0
	} else if camera.Target.X > maxX {
		camera.Target.X = maxX
	}

	if camera.Target.Y > 0 {
		camera.Target.Y = 0
	}

	dt := Delta(e)
	camera.Position.X += (camera.Target.X - camera.Position.X) * cfg.Camera.Smoothing * dt
	camera.Position.Y += (camera.Target.Y - camera.Position.Y) * cfg.Camera.Smoothing * dt
}
