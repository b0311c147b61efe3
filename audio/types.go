// Package audio synthesizes the gate's feedback tones with beep
package audio

import "time"

// SoundType identifies a feedback cue
type SoundType int

const (
	SoundTap     SoundType = iota // Scoring activation
	SoundResolve                  // Stage completion chime
	SoundFinish                   // Overall completion arpeggio
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTap:
		return "tap"
	case SoundResolve:
		return "resolve"
	case SoundFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Note is one tone of a pattern
type Note struct {
	Frequency float64
	Wave      WaveType
	Duration  time.Duration
	Offset    time.Duration // Start time relative to the pattern start
}

// Pattern is a named set of overlapping notes
type Pattern struct {
	Sound SoundType
	Notes []Note
}

// Length returns when the last note of the pattern ends
func (p Pattern) Length() time.Duration {
	var end time.Duration
	for _, n := range p.Notes {
		end = max(end, n.Offset+n.Duration)
	}
	return end
}
