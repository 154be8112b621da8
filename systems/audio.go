package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mossrock/turnstone/assets"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The ebiten audio context is process-wide and can only be created once.
var (
	audioContextOnce sync.Once
	audioContext     *audio.Context
)

func sharedAudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

// GetOrCreateAudio returns the singleton audio state, initializing the
// context, the loader and saved volume settings on first use.
func GetOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(ecs.World); !ok {
		ctx := sharedAudioContext()
		data := components.AudioData{
			Context:     ctx,
			Loader:      assets.NewAudioLoader(ctx),
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			WarnedPaths: make(map[string]bool),
		}
		applySavedSettings(&data)

		ent := ecs.World.Entry(ecs.World.Create(components.Audio))
		components.Audio.SetValue(ent, data)
	}

	ent, _ := components.Audio.First(ecs.World)
	return components.Audio.Get(ent)
}

// UpdateAudio drains the pending SFX queue and advances music fades. It
// runs even while paused so menu sounds and fade-outs keep working.
func UpdateAudio(ecs *ecs.ECS) {
	a := GetOrCreateAudio(ecs)

	if a.FadeOutTimer > 0 {
		a.FadeOutTimer--
		if a.MusicPlayer != nil {
			frac := float64(a.FadeOutTimer) / float64(a.FadeOutDuration)
			a.MusicPlayer.SetVolume(a.FadeStartVolume * frac)
			if a.FadeOutTimer == 0 {
				a.MusicPlayer.Pause()
				a.MusicPlayer = nil
				a.CurrentMusicKey = ""
			}
		}
	}

	for _, id := range a.PendingSFX {
		playSFX(a, id)
	}
	a.PendingSFX = a.PendingSFX[:0]
}

// EnqueueSFX queues a one-shot sound for the next audio update. Safe to
// call from any system or event subscriber.
func EnqueueSFX(w donburi.World, id cfg.SoundID) {
	if ent, ok := components.Audio.First(w); ok {
		a := components.Audio.Get(ent)
		a.PendingSFX = append(a.PendingSFX, id)
	}
}

// PlaySFX queues a one-shot sound, creating the audio state if needed.
func PlaySFX(ecs *ecs.ECS, id cfg.SoundID) {
	a := GetOrCreateAudio(ecs)
	a.PendingSFX = append(a.PendingSFX, id)
}

func playSFX(a *components.AudioData, id cfg.SoundID) {
	if a.Muted || a.Loader == nil {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := a.Loader.LoadSFX(path)
	if err != nil {
		if !a.WarnedPaths[path] {
			a.WarnedPaths[path] = true
			log.Printf("Warning: could not load sfx %s: %v", path, err)
		}
		return
	}

	vol := a.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	player.SetVolume(vol)
	player.Play()
}

// PlayMusic starts looping music from the given path, replacing whatever
// is playing. A second call with the same path is a no-op.
func PlayMusic(ecs *ecs.ECS, path string) {
	a := GetOrCreateAudio(ecs)
	if a.CurrentMusicKey == path {
		return
	}

	if a.MusicPlayer != nil {
		a.MusicPlayer.Pause()
		a.MusicPlayer = nil
	}
	a.FadeOutTimer = 0
	a.CurrentMusicKey = ""

	player, err := a.Loader.LoadMusic(path)
	if err != nil {
		if !a.WarnedPaths[path] {
			a.WarnedPaths[path] = true
			log.Printf("Warning: could not load music %s: %v", path, err)
		}
		return
	}

	if a.Muted {
		player.SetVolume(0)
	} else {
		player.SetVolume(a.MusicVolume)
	}
	player.Play()
	a.MusicPlayer = player
	a.CurrentMusicKey = path
}

// StopMusicWithFade fades the current music out over the configured
// duration instead of cutting it.
func StopMusicWithFade(ecs *ecs.ECS) {
	a := GetOrCreateAudio(ecs)
	if a.MusicPlayer == nil || a.FadeOutTimer > 0 {
		return
	}
	a.FadeOutTimer = cfg.Audio.MusicFadeDuration
	a.FadeOutDuration = cfg.Audio.MusicFadeDuration
	a.FadeStartVolume = a.MusicVolume
	if a.Muted {
		a.FadeStartVolume = 0
	}
}

// PauseMusic suspends the music player without losing its position.
func PauseMusic(ecs *ecs.ECS) {
	a := GetOrCreateAudio(ecs)
	if a.MusicPlayer != nil && a.MusicPlayer.IsPlaying() {
		a.MusicPlayer.Pause()
	}
}

// ResumeMusic continues music paused by PauseMusic.
func ResumeMusic(ecs *ecs.ECS) {
	a := GetOrCreateAudio(ecs)
	if a.MusicPlayer != nil && !a.MusicPlayer.IsPlaying() && a.FadeOutTimer == 0 {
		a.MusicPlayer.Play()
	}
}

// SetMuted flips the mute state, persisting it and applying it to the
// current music player immediately.
func SetMuted(ecs *ecs.ECS, muted bool) {
	a := GetOrCreateAudio(ecs)
	a.Muted = muted
	if a.MusicPlayer != nil && a.FadeOutTimer == 0 {
		if muted {
			a.MusicPlayer.SetVolume(0)
		} else {
			a.MusicPlayer.SetVolume(a.MusicVolume)
		}
	}
	saveAudioSettings(a)
}
