package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundTick
	SoundSting
	SoundMenuNavigate
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to clip names
type SoundConfig struct {
	BattleMusic       string
	SFXClips          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 30,
	}

	Sound = SoundConfig{
		BattleMusic: "music/bgm",
		SFXClips: map[SoundID]string{
			SoundTick:         "sfx/tick",
			SoundSting:        "sfx/sting",
			SoundMenuNavigate: "sfx/menu_move",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSting: 1.2,
		},
	}
}
