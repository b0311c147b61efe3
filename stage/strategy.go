package stage

import (
	"time"

	"github.com/lixenwraith/gift-gate/item"
)

// Strategy is the behavior of one stage variant
// A fresh strategy is built from the definition at every stage start
type Strategy interface {
	// Initialize spawns the stage's first items and timers
	Initialize(e *Engine)

	// OnActivate handles a click on a live item of the active stage
	OnActivate(e *Engine, it *item.Item)
}

// strategyTable maps each variant to its constructor, resolved once per StartStage
var strategyTable = map[Variant]func(Definition) Strategy{
	VariantCatch:   func(Definition) Strategy { return &catchStrategy{} },
	VariantOrdered: func(def Definition) Strategy { return &orderedStrategy{sequence: def.Sequence} },
	VariantRush:    func(Definition) Strategy { return &rushStrategy{} },
}

// catchStrategy keeps exactly one target live until the stage target is met
type catchStrategy struct{}

func (c *catchStrategy) Initialize(e *Engine) {
	e.Spawn(item.KindGift, "")
}

func (c *catchStrategy) OnActivate(e *Engine, it *item.Item) {
	if !e.Board().Remove(it.ID) {
		return
	}
	if e.Score(it) {
		e.Complete()
		return
	}
	e.Spawn(item.KindGift, "")
}

// orderedStrategy lays out every symbol at once and accepts them in sequence order
// Matched tiles stay on the board so the finished password remains visible
type orderedStrategy struct {
	sequence []item.Symbol
}

func (o *orderedStrategy) Initialize(e *Engine) {
	for _, sym := range o.sequence {
		e.Spawn(item.KindSymbol, sym)
	}
}

func (o *orderedStrategy) OnActivate(e *Engine, it *item.Item) {
	score := e.State().Score
	if it.Resolved || score >= len(o.sequence) {
		return
	}
	if it.Payload != o.sequence[score] {
		e.Reject(it)
		return
	}
	it.Resolve()
	if e.Score(it) {
		e.After(e.Pacing().ResolveLinger, e.Complete)
	}
}

// rushStrategy keeps a few short-lived targets drifting around the board
// Each target expires after a random lifetime and is replaced while the target is unmet
type rushStrategy struct{}

func (r *rushStrategy) Initialize(e *Engine) {
	p := e.Pacing()
	for i := 0; i < p.RushConcurrent; i++ {
		e.After(p.RushStagger*time.Duration(i), func() { r.spawn(e) })
	}
}

func (r *rushStrategy) OnActivate(e *Engine, it *item.Item) {
	if !e.Board().Remove(it.ID) {
		return
	}
	if e.Score(it) {
		// Remaining stars would otherwise linger inert until the next stage clears them
		e.Board().Clear()
		e.Complete()
		return
	}
	r.spawn(e)
}

func (r *rushStrategy) spawn(e *Engine) {
	if e.State().Score >= e.Current().Target {
		return
	}
	p := e.Pacing()
	it := e.Spawn(item.KindStar, "")
	now := e.Now()
	lifetime := e.RandomDuration(p.RushLifetimeMin, p.RushLifetimeMax)
	it.Deadline = now.Add(lifetime)
	it.MoveTo(e.RandomPosition(item.KindStar), now, lifetime)

	e.After(lifetime+p.RushExpiryGrace, func() { r.expire(e, it) })
}

// expire removes a star that outlived its lifetime, a no-op if it was already caught
func (r *rushStrategy) expire(e *Engine, it *item.Item) {
	if !e.Board().Remove(it.ID) {
		return
	}
	e.Expire(it)
	if e.State().Score < e.Current().Target {
		r.spawn(e)
	}
}
