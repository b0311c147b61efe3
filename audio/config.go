package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/gift-gate/constants"
)

// AudioConfig holds synthesis and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundTap:     0.6,
			SoundResolve: 0.8,
			SoundFinish:  1.0,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// EffectVolume returns the per-cue volume, 1.0 when unset
func (c *AudioConfig) EffectVolume(s SoundType) float64 {
	if v, ok := c.EffectVolumes[s]; ok {
		return v
	}
	return 1.0
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("GIFT_GATE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("GIFT_GATE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if effectVols := os.Getenv("GIFT_GATE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < SoundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv("GIFT_GATE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
