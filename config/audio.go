package config

// SoundID represents a logical sound effect cue.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundDamage
	SoundDeath
)

// AudioConfig contains audio-related configuration values.
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeOutDuration float64 // seconds to silence the music on death
	MusicFadeInDuration  float64 // seconds to restore it after the fade-in
}

// SoundConfig maps sound IDs to embedded file paths.
type SoundConfig struct {
	Music    string
	SFXPaths map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:           44100,
		DefaultMusicVol:      0.75,
		DefaultSFXVol:        1.0,
		MusicFadeOutDuration: 0.75,
		MusicFadeInDuration:  0.25,
	}

	Sound = SoundConfig{
		Music: "audio/music.wav",
		SFXPaths: map[SoundID]string{
			SoundCoin:   "audio/coin.wav",
			SoundDamage: "audio/damage.wav",
			SoundDeath:  "audio/death.wav",
		},
	}
}
