package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw keyboard and gamepad state into the input
// singleton. Must run before UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX = 0
	input.AxisY = 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Left stick with deadzone, merged into the directional actions. The
	// right trigger past its threshold counts as a dash press.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) < cfg.Input.HorizontalDeadzone {
			x = 0
		}
		if math.Abs(y) < cfg.Input.VerticalDeadzone {
			y = 0
		}
		if x != 0 {
			input.AxisX = x
		}
		if y != 0 {
			input.AxisY = y
		}

		trigger := ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight)
		if trigger > cfg.Input.TriggerThreshold {
			input.Current[cfg.ActionDash] = true
		}
	}

	if input.AxisX < 0 {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if input.AxisX > 0 {
		input.Current[cfg.ActionMoveRight] = true
	}
	if input.AxisY < 0 {
		input.Current[cfg.ActionMoveUp] = true
	}
	if input.AxisY > 0 {
		input.Current[cfg.ActionMoveDown] = true
	}
}
