package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/assets"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

// Global audio state, created once and shared for the whole session.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol

	// Active music volume ramp. fadeRemaining counts down in seconds;
	// fadeTarget is the volume at zero.
	fadeRemaining float64
	fadeDuration  float64
	fadeStart     float64
	fadeTarget    float64

	audioInitOnce sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes every sound effect at startup so the first play
// has no decode lag.
func PreloadAllSFX() {
	initGlobalAudio()
	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: failed to preload %s: %v", path, err)
		}
	}
}

// PlayMusic starts the looping background track.
func PlayMusic() {
	initGlobalAudio()
	if globalMusicPlayer != nil {
		return
	}

	player, err := globalAudioLoader.LoadMusic(cfg.Sound.Music)
	if err != nil {
		log.Printf("Warning: failed to load music: %v", err)
		return
	}
	globalMusicPlayer = player
	globalMusicPlayer.SetVolume(globalMusicVolume)
	globalMusicPlayer.Play()
}

// UpdateAudio plays queued sound cues, consumes music fade requests, and
// advances any volume ramp in progress.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.MusicFadeOut {
		audioData.MusicFadeOut = false
		startMusicFade(0, cfg.Audio.MusicFadeOutDuration)
	}
	if audioData.MusicFadeIn {
		audioData.MusicFadeIn = false
		startMusicFade(globalMusicVolume, cfg.Audio.MusicFadeInDuration)
	}

	if fadeRemaining > 0 && globalMusicPlayer != nil {
		fadeRemaining -= Delta(e)
		if fadeRemaining < 0 {
			fadeRemaining = 0
		}
		progress := 1 - fadeRemaining/fadeDuration
		globalMusicPlayer.SetVolume(fadeStart + (fadeTarget-fadeStart)*progress)
	}
}

func startMusicFade(target, duration float64) {
	if globalMusicPlayer == nil {
		return
	}
	fadeStart = globalMusicPlayer.Volume()
	fadeTarget = target
	fadeDuration = duration
	fadeRemaining = duration
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: failed to load sfx %s: %v", path, err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// queueSFX appends a cue to the audio singleton for the next UpdateAudio.
func queueSFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

func requestMusicFadeOut(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).MusicFadeOut = true
	}
}

func requestMusicFadeIn(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).MusicFadeIn = true
	}
}
