package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
)

// ActionState represents the temporal state of an action.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the post-deadzone analog axes. JustPressed/JustReleased are
// computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Left stick axes after deadzone filtering; zero when only keyboard
	// input is present.
	AxisX float64
	AxisY float64
}

// Action returns the temporal state for one action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
