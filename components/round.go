package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
)

// RoundData is the singleton round transition state machine. While the
// state is anything other than RoundPlaying, the simulation systems are
// suspended and only the fade tween advances.
type RoundData struct {
	State     cfg.RoundStateID
	FadeAlpha float32
	Fade      *gween.Tween

	// HasWon flips the fade overlay to white and ends the round once the
	// screen is fully covered instead of fading back in.
	HasWon     bool
	Terminated bool
}

var Round = donburi.NewComponentType[RoundData]()
