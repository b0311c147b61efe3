package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"GIFT_GATE_AUDIO_ENABLED",
		"GIFT_GATE_MASTER_VOLUME",
		"GIFT_GATE_SFX_VOLUMES",
		"GIFT_GATE_SAMPLE_RATE",
		"GIFT_GATE_ADVANCE_DELAY_MS",
		"GIFT_GATE_FINISH_DELAY_MS",
		"GIFT_GATE_CELEBRATION_MS",
		"GIFT_GATE_SEED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Debug {
		t.Error("Expected debug off by default")
	}
	if cfg.Pacing.AdvanceDelay != 800*time.Millisecond {
		t.Errorf("Expected 800ms advance delay, got %v", cfg.Pacing.AdvanceDelay)
	}
	if cfg.Pacing.FinishDelay != time.Second {
		t.Errorf("Expected 1s finish delay, got %v", cfg.Pacing.FinishDelay)
	}
	if cfg.Celebration != 15*time.Second {
		t.Errorf("Expected 15s celebration, got %v", cfg.Celebration)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIFT_GATE_ADVANCE_DELAY_MS", "200")
	t.Setenv("GIFT_GATE_FINISH_DELAY_MS", "0")
	t.Setenv("GIFT_GATE_CELEBRATION_MS", "3000")
	t.Setenv("GIFT_GATE_SEED", "99")
	t.Setenv("GIFT_GATE_MASTER_VOLUME", "20")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Pacing.AdvanceDelay != 200*time.Millisecond {
		t.Errorf("Expected 200ms, got %v", cfg.Pacing.AdvanceDelay)
	}
	if cfg.Pacing.FinishDelay != 0 {
		t.Errorf("Expected zero finish delay, got %v", cfg.Pacing.FinishDelay)
	}
	if cfg.Celebration != 3*time.Second {
		t.Errorf("Expected 3s, got %v", cfg.Celebration)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.Audio.MasterVolume != 0.2 {
		t.Errorf("Expected master volume 0.2, got %f", cfg.Audio.MasterVolume)
	}
}

func TestLoadIgnoresMalformedEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIFT_GATE_ADVANCE_DELAY_MS", "-5")
	t.Setenv("GIFT_GATE_CELEBRATION_MS", "soon")
	t.Setenv("GIFT_GATE_SEED", "abc")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	def := Default()
	if cfg.Pacing.AdvanceDelay != def.Pacing.AdvanceDelay {
		t.Errorf("Expected default advance delay, got %v", cfg.Pacing.AdvanceDelay)
	}
	if cfg.Celebration != def.Celebration {
		t.Errorf("Expected default celebration, got %v", cfg.Celebration)
	}
}

func TestLoadFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIFT_GATE_SEED", "5")

	cfg, err := Load([]string{"-debug", "-seed", "7", "-mute"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.Debug {
		t.Error("Expected debug on")
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected flag seed to win, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected -mute to disable audio")
	}
}

func TestLoadBadFlag(t *testing.T) {
	clearEnv(t)
	if _, err := Load([]string{"-volume", "11"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

// TestLoadRejectsZeroCelebration verifies the celebration needs at least 1ms while delays may be zero
func TestLoadRejectsZeroCelebration(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIFT_GATE_CELEBRATION_MS", "0")
	t.Setenv("GIFT_GATE_ADVANCE_DELAY_MS", "0")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Celebration != Default().Celebration {
		t.Errorf("Expected zero celebration to keep the default, got %v", cfg.Celebration)
	}
	if cfg.Pacing.AdvanceDelay != 0 {
		t.Errorf("Expected zero advance delay to be accepted, got %v", cfg.Pacing.AdvanceDelay)
	}

	t.Setenv("GIFT_GATE_CELEBRATION_MS", "1")
	if cfg, _ = Load(nil); cfg.Celebration != time.Millisecond {
		t.Errorf("Expected 1ms celebration, got %v", cfg.Celebration)
	}
}
