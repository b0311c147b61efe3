package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/gift-gate/constants"
)

// SoundManager owns the speaker and mixes feedback cues into it
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [SoundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device
// A disabled config leaves the manager silent without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Play queues a pattern on the mixer, no-op before Initialize
func (sm *SoundManager) Play(p Pattern) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(p.Notes) == 0 {
		return
	}

	streamer := NewPatternStreamer(p, sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	if p.Sound >= 0 && p.Sound < SoundTypeCount {
		sm.played[p.Sound]++
	}
}

// Played returns how many times a cue reached the mixer
func (sm *SoundManager) Played(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s < 0 || s >= SoundTypeCount {
		return 0
	}
	return sm.played[s]
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
