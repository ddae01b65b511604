package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundLaunch
	SoundBounce
	SoundHole
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundLaunch:       "audio/sfx/launch.wav",
			SoundBounce:       "audio/sfx/bounce.wav",
			SoundHole:         "audio/sfx/hole.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBounce: 0.6,
		},
	}
}
