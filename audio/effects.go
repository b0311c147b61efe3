package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/gift-gate/constants"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential decay to a stream
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
}

// NewEnvelope shapes s over duration: linear fade-in, then exponential fall to silence
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.totalSamples > e.attackSamples {
			// Ramp from 1 down to 1e-4 (-80dB) across the remaining samples
			progress := float64(e.position-e.attackSamples) / float64(e.totalSamples-e.attackSamples)
			vol = math.Pow(1e-4, progress)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newTone returns the raw wave for a note
// Sine notes use beep's generator; other shapes use the local oscillator
func newTone(n Note, rate beep.SampleRate) beep.Streamer {
	if n.Wave == WaveSine {
		if sine, err := generators.SineTone(rate, n.Frequency); err == nil {
			return beep.Take(rate.N(n.Duration), sine)
		}
	}
	return NewOscillator(n.Frequency, n.Duration, n.Wave, rate)
}

// NewPatternStreamer renders a pattern into a finite streamer at the configured volume
func NewPatternStreamer(p Pattern, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	voices := make([]beep.Streamer, 0, len(p.Notes))
	for _, n := range p.Notes {
		shaped := NewEnvelope(newTone(n, rate), n.Duration, constants.ToneAttack, rate)
		if n.Offset > 0 {
			shaped = beep.Seq(beep.Silence(rate.N(n.Offset)), shaped)
		}
		voices = append(voices, shaped)
	}

	vol := cfg.EffectVolume(p.Sound) * cfg.MasterVolume * constants.ToneGain
	return newVolume(beep.Mix(voices...), vol)
}
