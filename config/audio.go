package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLandSoft
	SoundLandHard
	SoundFootstep
	// World sounds
	SoundRotate
	SoundEat
	SoundSleep
	SoundSplash
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	LevelMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic:  "audio/music/menu.ogg",
		LevelMusic: "audio/music/level.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:         "audio/sfx/jump.wav",
			SoundLandSoft:     "audio/sfx/land_soft.wav",
			SoundLandHard:     "audio/sfx/land_hard.wav",
			SoundFootstep:     "audio/sfx/footstep.wav",
			SoundRotate:       "audio/sfx/rotate.wav",
			SoundEat:          "audio/sfx/eat.wav",
			SoundSleep:        "audio/sfx/sleep.wav",
			SoundSplash:       "audio/sfx/splash.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLandHard: 1.4,
			SoundFootstep: 0.6,
		},
	}
}
