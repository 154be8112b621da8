package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mossrock/turnstone/assets"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Systems queue
// one-shot sounds into PendingSFX; the audio system drains the queue once
// per frame.
type AudioData struct {
	Context         *audio.Context
	Loader          *assets.AudioLoader
	MusicPlayer     *audio.Player
	MusicVolume     float64 // 0.0 - 1.0
	SFXVolume       float64 // 0.0 - 1.0
	Muted           bool
	CurrentMusicKey string // Track which music is playing
	FadeOutTimer    int    // Frames remaining for fade out
	FadeOutDuration int    // Total fade duration in frames
	FadeStartVolume float64
	PendingSFX      []cfg.SoundID

	// Paths that already produced a load warning, so missing assets log
	// once instead of every frame.
	WarnedPaths map[string]bool
}

var Audio = donburi.NewComponentType[AudioData]()
