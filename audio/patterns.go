package audio

import (
	"time"

	"github.com/lixenwraith/gift-gate/constants"
)

// TapPattern is a short sine blip for a scoring activation
func TapPattern() Pattern {
	return Pattern{
		Sound: SoundTap,
		Notes: []Note{
			{Frequency: constants.TapFrequency, Wave: WaveSine, Duration: constants.TapDuration},
		},
	}
}

// ResolvePattern is a two-note triangle chime for a stage completion
func ResolvePattern() Pattern {
	return Pattern{
		Sound: SoundResolve,
		Notes: []Note{
			{Frequency: constants.ResolveNote1Frequency, Wave: WaveTriangle, Duration: constants.ResolveNoteDuration},
			{Frequency: constants.ResolveNote2Frequency, Wave: WaveTriangle, Duration: constants.ResolveNoteDuration, Offset: constants.ResolveNoteGap},
		},
	}
}

// FinishPattern is a rising sine arpeggio for clearing the gate
func FinishPattern() Pattern {
	notes := make([]Note, 0, len(constants.FinishFrequencies))
	for i, f := range constants.FinishFrequencies {
		notes = append(notes, Note{
			Frequency: f,
			Wave:      WaveSine,
			Duration:  constants.FinishNoteDuration,
			Offset:    constants.FinishNoteGap * time.Duration(i),
		})
	}
	return Pattern{Sound: SoundFinish, Notes: notes}
}
