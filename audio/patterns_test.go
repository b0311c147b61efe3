package audio

import (
	"testing"
	"time"
)

func TestPatternLengths(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		sound   SoundType
		notes   int
		length  time.Duration
	}{
		{"tap", TapPattern(), SoundTap, 1, 100 * time.Millisecond},
		{"resolve", ResolvePattern(), SoundResolve, 2, 300 * time.Millisecond},
		{"finish", FinishPattern(), SoundFinish, 4, 850 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pattern.Sound != tt.sound {
				t.Errorf("Expected sound %v, got %v", tt.sound, tt.pattern.Sound)
			}
			if len(tt.pattern.Notes) != tt.notes {
				t.Errorf("Expected %d notes, got %d", tt.notes, len(tt.pattern.Notes))
			}
			if got := tt.pattern.Length(); got != tt.length {
				t.Errorf("Expected length %v, got %v", tt.length, got)
			}
		})
	}
}

func TestFinishPatternRises(t *testing.T) {
	notes := FinishPattern().Notes
	for i := 1; i < len(notes); i++ {
		if notes[i].Frequency <= notes[i-1].Frequency {
			t.Errorf("Expected rising arpeggio at note %d", i)
		}
		if notes[i].Offset <= notes[i-1].Offset {
			t.Errorf("Expected staggered offsets at note %d", i)
		}
	}
}

func TestResolvePatternWave(t *testing.T) {
	for i, n := range ResolvePattern().Notes {
		if n.Wave != WaveTriangle {
			t.Errorf("Note %d: expected triangle wave, got %d", i, n.Wave)
		}
	}
}
