package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

var (
	colorBackground = color.RGBA{29, 62, 94, 255}
	colorPlatform   = color.RGBA{42, 98, 143, 255}
	colorPlayer     = color.RGBA{62, 146, 204, 255}
	colorEnemy      = color.RGBA{14, 201, 128, 255}
	colorCoin       = color.RGBA{251, 206, 43, 255}
	colorAttack     = color.RGBA{204, 62, 146, 255}
	colorDamaged    = color.RGBA{255, 0, 0, 255}
)

// DrawWorld renders the whole scene as flat rectangles offset by the
// camera, back to front: platforms, enemies, coins, player, fade overlay.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colorBackground)

	var camera *components.CameraData
	if entry, ok := components.Camera.First(e.World); ok {
		camera = components.Camera.Get(entry)
	} else {
		camera = &components.CameraData{}
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		drawBox(screen, camera, components.Object.Get(entry).Box(), colorPlatform)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.State != cfg.EnemyActive {
			return
		}
		c := colorEnemy
		if enemy.DamageCooldown > cfg.Combat.DamageFlashFloor {
			c = colorDamaged
		}
		drawBox(screen, camera, components.Object.Get(entry).Box(), c)
	})

	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		if components.Coin.Get(entry).Collected {
			return
		}
		drawBox(screen, camera, components.Object.Get(entry).Box(), colorCoin)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)

		if player.IsAttacking {
			drawBox(screen, camera, player.AttackBox, colorAttack)
		}

		c := colorPlayer
		if player.DamageCooldown > cfg.Combat.DamageFlashFloor {
			c = colorDamaged
		}
		drawBox(screen, camera, components.Object.Get(playerEntry).Box(), c)
	}

	DrawHUD(e, screen)
	drawFadeOverlay(e, screen)
}

func drawBox(screen *ebiten.Image, camera *components.CameraData, box gamemath.Box, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(box.X-camera.Position.X), float32(box.Y-camera.Position.Y),
		float32(box.W), float32(box.H),
		c, false)
}

// drawFadeOverlay covers the screen during round transitions: black for a
// death reset, white for a win.
func drawFadeOverlay(e *ecs.ECS, screen *ebiten.Image) {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)
	if round.FadeAlpha <= 0 {
		return
	}

	alpha := uint8(round.FadeAlpha)
	c := color.RGBA{0, 0, 0, alpha}
	if round.HasWon {
		c = color.RGBA{alpha, alpha, alpha, alpha}
	}
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.Window.Width), float32(cfg.Window.Height),
		c, false)
}
