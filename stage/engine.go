// Package stage runs the gate's stage state machine and scoring rules
package stage

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/gift-gate/engine"
	"github.com/lixenwraith/gift-gate/event"
	"github.com/lixenwraith/gift-gate/item"
)

// HUD receives the stage text and score the view displays
type HUD interface {
	ShowStage(def Definition, index, total int)
	ShowScore(score, target int)
}

// Navigator is told once the last stage has been cleared and paced out
type Navigator interface {
	StagesCleared()
}

// Config wires an Engine to its collaborators
type Config struct {
	Definitions []Definition
	Scheduler   engine.Scheduler
	Clock       engine.TimeProvider
	Factory     *item.Factory
	Queue       *event.EventQueue
	HUD         HUD
	Navigator   Navigator
	Pacing      Pacing
	Rand        *rand.Rand
}

// Engine owns the runtime state and drives the active stage's strategy
//
// Lifecycle:
//   - StartStage bumps the epoch, resets the score, clears the board and initializes the strategy
//   - Item handlers and timers are guarded by the epoch captured when they were created
//   - Completion bumps the epoch again so the finished stage stops accepting input,
//     then schedules the next stage (or the navigator) under the new epoch
//   - Deactivate bumps the epoch and clears the board; nothing scheduled earlier can fire
type Engine struct {
	defs     []Definition
	def      Definition
	state    RuntimeState
	strategy Strategy
	epoch    engine.Epoch

	active    bool // Accepting activations
	completed bool // Completion already fired for this activation

	sched   engine.Scheduler
	clock   engine.TimeProvider
	factory *item.Factory
	board   *item.Board
	queue   *event.EventQueue
	hud     HUD
	nav     Navigator
	pacing  Pacing
	rng     *rand.Rand
	stats   Stats
}

// NewEngine creates an engine, panics on an invalid definition list
func NewEngine(cfg Config) *Engine {
	if err := validateDefinitions(cfg.Definitions); err != nil {
		panic(fmt.Errorf("stage: %w", err))
	}

	e := &Engine{
		defs:    cfg.Definitions,
		sched:   cfg.Scheduler,
		clock:   cfg.Clock,
		factory: cfg.Factory,
		board:   cfg.Factory.Board(),
		queue:   cfg.Queue,
		hud:     cfg.HUD,
		nav:     cfg.Navigator,
		pacing:  cfg.Pacing,
		rng:     cfg.Rand,
	}
	if e.hud == nil {
		e.hud = nopHUD{}
	}
	if e.nav == nil {
		e.nav = nopNavigator{}
	}
	if e.queue == nil {
		e.queue = event.NewEventQueue()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// SetNavigator replaces the navigator, used when the screen controller is built after the engine
func (e *Engine) SetNavigator(nav Navigator) {
	e.nav = nav
}

// StartStage activates stage n, precondition 1 <= n <= Total()
func (e *Engine) StartStage(n int) {
	if n < 1 || n > len(e.defs) {
		panic(fmt.Sprintf("stage: StartStage(%d) outside 1..%d", n, len(e.defs)))
	}

	e.epoch.Advance()
	e.def = e.defs[n-1]
	e.state = RuntimeState{Index: n, Score: 0}
	e.active = true
	e.completed = false
	e.board.Clear()
	e.stats.Starts++

	e.hud.ShowStage(e.def, n, len(e.defs))
	e.hud.ShowScore(0, e.def.Target)
	e.push(event.EventStageStarted, e.stagePayload())
	log.Printf("Stage %d/%d started: %s (%s, target %d)", n, len(e.defs), e.def.Title, e.def.Variant, e.def.Target)

	e.strategy = strategyTable[e.def.Variant](e.def)
	e.strategy.Initialize(e)
}

// Deactivate stops the active stage and discards its items and pending work
func (e *Engine) Deactivate() {
	e.epoch.Advance()
	e.active = false
	e.board.Clear()
}

// Fits reports whether the board can hold every stage's simultaneous items without overlap
// A stacked ordered board would hide tiles below the top one
func (e *Engine) Fits() bool {
	for _, def := range e.defs {
		kind, need := item.KindGift, 1
		switch def.Variant {
		case VariantOrdered:
			kind, need = item.KindSymbol, len(def.Sequence)
		case VariantRush:
			kind = item.KindStar
		}
		if e.factory.Capacity(kind) < need {
			return false
		}
	}
	return true
}

// State returns a copy of the runtime state
func (e *Engine) State() RuntimeState {
	return e.state
}

// Current returns the active stage definition
func (e *Engine) Current() Definition {
	return e.def
}

// Total returns the number of stages
func (e *Engine) Total() int {
	return len(e.defs)
}

// Active reports whether the current stage accepts activations
func (e *Engine) Active() bool {
	return e.active
}

// Epoch returns the current generation, changes on every start, completion and deactivation
func (e *Engine) Epoch() uint64 {
	return e.epoch.Current()
}

// Stats returns outcome counters
func (e *Engine) Stats() Stats {
	return e.stats
}

// Board returns the play area items are spawned on
func (e *Engine) Board() *item.Board {
	return e.board
}

// Pacing returns the timing the engine runs with
func (e *Engine) Pacing() Pacing {
	return e.pacing
}

// Now returns the engine clock time
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// After schedules fn under the current epoch, a no-op if the stage has moved on
func (e *Engine) After(delay time.Duration, fn func()) {
	e.sched.After(delay, e.epoch.Guard(fn))
}

// Spawn creates an item whose activation is routed to the active strategy
// The handler is bound to the current epoch
func (e *Engine) Spawn(kind item.Kind, payload item.Symbol) *item.Item {
	captured := e.epoch.Current()
	return e.factory.Create(kind, payload, func(it *item.Item) {
		if !e.epoch.Valid(captured) || !e.active {
			return
		}
		e.strategy.OnActivate(e, it)
	})
}

// RandomPosition returns a free-standing random position for an item of the given kind
func (e *Engine) RandomPosition(kind item.Kind) item.Point {
	return e.factory.RandomPosition(e.factory.SizeOf(kind))
}

// RandomDuration returns a uniform duration in [lo, hi)
func (e *Engine) RandomDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(e.rng.Int63n(int64(hi-lo)))
}

// Score records a successful activation and reports whether the target is now reached
// A no-op returning false once the target is met
func (e *Engine) Score(it *item.Item) bool {
	if e.state.Score >= e.def.Target {
		return false
	}
	e.state.Score++
	e.stats.Activations++
	e.hud.ShowScore(e.state.Score, e.def.Target)
	e.push(event.EventItemTapped, e.itemPayload(it))
	return e.state.Score == e.def.Target
}

// Reject records a wrong-order tap and starts the item's failure animation
func (e *Engine) Reject(it *item.Item) {
	it.Shake(e.clock.Now(), e.pacing.ShakeDuration)
	e.stats.Misses++
	e.push(event.EventItemRejected, e.itemPayload(it))
}

// Expire records an item that timed out
func (e *Engine) Expire(it *item.Item) {
	e.stats.Expiries++
	e.push(event.EventItemExpired, e.itemPayload(it))
}

// Complete fires the stage-completion transition, at most once per stage activation
func (e *Engine) Complete() {
	if e.completed || e.state.Score < e.def.Target {
		return
	}
	e.completed = true
	e.active = false
	e.stats.Completions++
	e.epoch.Advance()

	payload := e.stagePayload()
	e.push(event.EventStageComplete, payload)
	log.Printf("Stage %d/%d complete", e.state.Index, len(e.defs))

	if payload.Last {
		e.After(e.pacing.FinishDelay, func() {
			log.Printf("All %d stages cleared", len(e.defs))
			e.nav.StagesCleared()
		})
		return
	}
	next := e.state.Index + 1
	e.After(e.pacing.AdvanceDelay, func() {
		e.StartStage(next)
	})
}

func (e *Engine) push(t event.EventType, payload any) {
	e.queue.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: e.clock.Now(),
	})
}

func (e *Engine) stagePayload() *event.StagePayload {
	return &event.StagePayload{
		Stage: e.state.Index,
		Total: len(e.defs),
		Last:  e.state.Index == len(e.defs),
	}
}

func (e *Engine) itemPayload(it *item.Item) *event.ItemPayload {
	c := it.Center()
	return &event.ItemPayload{
		Kind:    it.Kind.String(),
		Payload: string(it.Payload),
		X:       c.X,
		Y:       c.Y,
		Score:   e.state.Score,
	}
}

type nopHUD struct{}

func (nopHUD) ShowStage(Definition, int, int) {}
func (nopHUD) ShowScore(int, int)             {}

type nopNavigator struct{}

func (nopNavigator) StagesCleared() {}
