// Package config resolves runtime settings from defaults, environment and flags
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/gift-gate/audio"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/stage"
)

// Config is the resolved runtime configuration
type Config struct {
	Debug       bool
	Seed        int64
	Pacing      stage.Pacing
	Celebration time.Duration
	Audio       *audio.AudioConfig
}

// Default returns the built-in configuration with a clock-derived seed
func Default() *Config {
	return &Config{
		Seed:        time.Now().UnixNano(),
		Pacing:      stage.DefaultPacing(),
		Celebration: constants.CelebrationDuration,
		Audio:       audio.DefaultAudioConfig(),
	}
}

// Load resolves configuration from the environment, then args
// Malformed environment values are ignored; malformed flags are returned as errors
func Load(args []string) (*Config, error) {
	cfg := Default()
	cfg.Audio = audio.LoadAudioConfig()

	if d, ok := envMillis("GIFT_GATE_ADVANCE_DELAY_MS", 0); ok {
		cfg.Pacing.AdvanceDelay = d
	}
	if d, ok := envMillis("GIFT_GATE_FINISH_DELAY_MS", 0); ok {
		cfg.Pacing.FinishDelay = d
	}
	if d, ok := envMillis("GIFT_GATE_CELEBRATION_MS", 1); ok {
		cfg.Celebration = d
	}
	if seed := os.Getenv("GIFT_GATE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	fs := flag.NewFlagSet("gift-gate", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "Write logs to logs/")
	seed := fs.Int64("seed", 0, "Random seed for item placement (0 keeps env or clock seed)")
	mute := fs.Bool("mute", false, "Disable audio")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Debug = *debug
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// envMillis reads a millisecond duration of at least minMs
func envMillis(key string, minMs int) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < minMs {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
