package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	"github.com/hollowgrove/ravine/tags"
)

var (
	colorHealthIcon = color.RGBA{255, 0, 0, 255}
	colorLostIcon   = color.RGBA{50, 50, 50, 255}
)

const (
	hudIconSize    = 40
	hudIconSpacing = 60
	hudIconY       = 10
)

// DrawHUD draws the health bar in screen space: filled icons grow from the
// left, lost icons fill in from the right end of the row.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	health := components.Health.Get(playerEntry)

	for i := 0; i < health.Current; i++ {
		vector.DrawFilledRect(screen,
			float32(10+hudIconSpacing*i), hudIconY,
			hudIconSize, hudIconSize,
			colorHealthIcon, false)
	}
	for i := 0; i < health.Max-health.Current; i++ {
		vector.DrawFilledRect(screen,
			float32(550-hudIconSpacing*i), hudIconY,
			hudIconSize, hudIconSize,
			colorLostIcon, false)
	}
}
