package constants

import "time"

// Audio Engine
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// ToneAttack is the fade-in applied to every note
	ToneAttack = 5 * time.Millisecond

	// ToneGain matches the quiet 0.05 gain of the celebration tones
	ToneGain = 0.25
)

// Tap Sound Timing
const (
	TapFrequency = 440.0
	TapDuration  = 100 * time.Millisecond
)

// Resolve Sound Timing (two-note chime)
const (
	ResolveNote1Frequency = 523.0
	ResolveNote2Frequency = 659.0
	ResolveNoteDuration   = 200 * time.Millisecond
	ResolveNoteGap        = 100 * time.Millisecond
)

// Finish Sound Timing (rising arpeggio)
const (
	FinishNoteDuration = 400 * time.Millisecond
	FinishNoteGap      = 150 * time.Millisecond
)

// FinishFrequencies is the C major arpeggio played on overall completion
var FinishFrequencies = [...]float64{523, 659, 783, 1046}
