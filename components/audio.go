package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/hollowgrove/ravine/config"
)

// AudioData queues sound cues for the audio system. Simulation systems only
// append IDs here; playback is handled outside the simulation.
type AudioData struct {
	PendingSFX []cfg.SoundID

	// MusicFadeOut/MusicFadeIn request a music volume transition; the audio
	// system consumes and clears them.
	MusicFadeOut bool
	MusicFadeIn  bool
}

var Audio = donburi.NewComponentType[AudioData]()
