package audio

import (
	"github.com/lixenwraith/zombie-fighter/config"
	"github.com/lixenwraith/zombie-fighter/parameter"
)

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0 to 1.0
	EffectVolumes map[SoundType]float64 // 0.0 to 1.0, scaled by MasterVolume
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundFire:     0.3,
			SoundKill:     0.6,
			SoundHurt:     0.7,
			SoundHeal:     0.6,
			SoundGameOver: 0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// NewAudioConfig derives the audio configuration from the game configuration
func NewAudioConfig(cfg config.AudioConfig) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Enabled = cfg.Enabled
	ac.MasterVolume = min(1, max(0, cfg.MasterVolume))
	return ac
}

// effectVolume is the final linear volume for one effect
func (c *AudioConfig) effectVolume(t SoundType) float64 {
	return c.EffectVolumes[t] * c.MasterVolume
}
