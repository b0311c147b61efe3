// Package feedback turns gameplay moments into tones and confetti
package feedback

import (
	"log"
	"time"

	"github.com/lixenwraith/gift-gate/audio"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/engine"
	"github.com/lixenwraith/gift-gate/event"
	"github.com/lixenwraith/gift-gate/particle"
)

// Sounder plays a tone pattern
type Sounder interface {
	Play(p audio.Pattern)
}

// Burster emits a confetti burst
type Burster interface {
	Burst(b particle.Burst) int
}

// Config wires an Emitter to its producers
type Config struct {
	Sounder     Sounder
	Burster     Burster
	Scheduler   engine.Scheduler
	Clock       engine.TimeProvider
	Bounds      func() (width, height float64) // Play-area size for normalizing item origins
	Celebration time.Duration                  // Sustained emission length for FinishAll
}

// Emitter produces the audio-visual response for taps, stage completions and the final view
// At most one celebration loop runs at a time; repeated FinishAll calls push its deadline out
type Emitter struct {
	sounder     Sounder
	burster     Burster
	sched       engine.Scheduler
	clock       engine.TimeProvider
	bounds      func() (float64, float64)
	celebration time.Duration

	looping  bool
	deadline time.Time
	stopped  bool
	frames   int
}

// NewEmitter creates an emitter, nil producers are replaced with silent ones
func NewEmitter(cfg Config) *Emitter {
	e := &Emitter{
		sounder:     cfg.Sounder,
		burster:     cfg.Burster,
		sched:       cfg.Scheduler,
		clock:       cfg.Clock,
		bounds:      cfg.Bounds,
		celebration: cfg.Celebration,
	}
	if e.sounder == nil {
		e.sounder = nopSounder{}
	}
	if e.burster == nil {
		e.burster = nopBurster{}
	}
	if e.bounds == nil {
		e.bounds = func() (float64, float64) { return 1, 1 }
	}
	if e.celebration <= 0 {
		e.celebration = constants.CelebrationDuration
	}
	return e
}

// Tap acknowledges a scoring activation at origin
func (e *Emitter) Tap(origin particle.Point) {
	e.sounder.Play(audio.TapPattern())
	e.burster.Burst(particle.Burst{
		Count:  constants.TapBurstCount,
		Angle:  90,
		Spread: constants.TapBurstSpread,
		Origin: origin,
	})
}

// Resolve celebrates a cleared stage
func (e *Emitter) Resolve() {
	e.sounder.Play(audio.ResolvePattern())
	e.burster.Burst(particle.Burst{
		Count:  constants.ResolveBurstCount,
		Angle:  90,
		Spread: constants.ResolveBurstSpread,
		Origin: particle.Point{X: 0.5, Y: constants.ResolveBurstOriginY},
	})
}

// Decor responds to a purely decorative element
func (e *Emitter) Decor(origin particle.Point) {
	e.sounder.Play(audio.TapPattern())
	e.burster.Burst(particle.Burst{
		Count:  constants.DecorBurstCount,
		Angle:  90,
		Spread: constants.DecorBurstSpread,
		Origin: origin,
	})
}

// FinishAll plays the closing arpeggio and starts, or extends, the sustained side bursts
func (e *Emitter) FinishAll() {
	e.sounder.Play(audio.FinishPattern())
	e.deadline = e.clock.Now().Add(e.celebration)
	e.stopped = false
	if e.looping {
		return
	}
	e.looping = true
	log.Printf("Celebration started for %v", e.celebration)
	e.sched.NextFrame(e.celebrate)
}

// Stop ends the celebration loop at its next frame
func (e *Emitter) Stop() {
	e.stopped = true
}

// Celebrating reports whether the sustained emission loop is running
func (e *Emitter) Celebrating() bool {
	return e.looping
}

// CelebrationFrames returns how many frames the loop has emitted on
func (e *Emitter) CelebrationFrames() int {
	return e.frames
}

func (e *Emitter) celebrate() {
	if e.stopped || !e.clock.Now().Before(e.deadline) {
		e.looping = false
		return
	}
	e.frames++
	e.burster.Burst(particle.Burst{
		Count:  constants.CelebrationBurstCount,
		Angle:  constants.CelebrationLeftAngle,
		Spread: constants.CelebrationBurstSpread,
		Origin: particle.Point{X: 0, Y: 0.6},
		Colors: constants.PartyPalette,
	})
	e.burster.Burst(particle.Burst{
		Count:  constants.CelebrationBurstCount,
		Angle:  constants.CelebrationRightAngle,
		Spread: constants.CelebrationBurstSpread,
		Origin: particle.Point{X: 1, Y: 0.6},
		Colors: constants.PartyPalette,
	})
	e.sched.NextFrame(e.celebrate)
}

// HandleEvent maps engine and view events onto feedback
func (e *Emitter) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventItemTapped:
		if p, ok := ev.Payload.(*event.ItemPayload); ok {
			e.Tap(e.normalize(p.X, p.Y))
		}
	case event.EventStageComplete:
		e.Resolve()
	case event.EventDecorTapped:
		origin := particle.Point{X: 0.5, Y: constants.DecorBurstOriginY}
		if p, ok := ev.Payload.(*event.ItemPayload); ok {
			origin = e.normalize(p.X, p.Y)
		}
		e.Decor(origin)
	}
}

// EventTypes returns the events the emitter reacts to
func (e *Emitter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventItemTapped,
		event.EventStageComplete,
		event.EventDecorTapped,
	}
}

func (e *Emitter) normalize(x, y float64) particle.Point {
	w, h := e.bounds()
	if w <= 0 || h <= 0 {
		return particle.Point{X: 0.5, Y: 0.5}
	}
	return particle.Point{X: x / w, Y: y / h}
}

type nopSounder struct{}

func (nopSounder) Play(audio.Pattern) {}

type nopBurster struct{}

func (nopBurster) Burst(particle.Burst) int { return 0 }
