// Package game assembles the gate from its parts and exposes a frontend-neutral surface
// Frontends translate pointer input into Click/Hover/Start/Reveal and call Tick once per frame
package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/gift-gate/config"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/engine"
	"github.com/lixenwraith/gift-gate/event"
	"github.com/lixenwraith/gift-gate/feedback"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/lixenwraith/gift-gate/particle"
	"github.com/lixenwraith/gift-gate/screen"
	"github.com/lixenwraith/gift-gate/stage"
)

// Options configures a Game
type Options struct {
	Config      *config.Config
	Width       float64 // Play-area size in frontend units
	Height      float64
	Sizes       map[item.Kind]item.Size
	Clock       engine.TimeProvider // Defaults to the monotonic clock
	Sounder     feedback.Sounder    // Defaults to silence
	Definitions []stage.Definition  // Defaults to the reference gate
}

// Game owns every gameplay object; all methods run on the frontend's goroutine
type Game struct {
	clock      engine.TimeProvider
	sched      *engine.ClockScheduler
	board      *item.Board
	factory    *item.Factory
	queue      *event.EventQueue
	router     *event.Router
	stages     *stage.Engine
	hud        *screen.HUD
	controller *screen.Controller
	emitter    *feedback.Emitter
	particles  *particle.System
	trail      *particle.Trail

	lastTick time.Time
}

// New builds a game showing the welcome view
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	defs := opts.Definitions
	if defs == nil {
		defs = stage.DefaultDefinitions()
	}

	g := &Game{
		clock:     clock,
		sched:     engine.NewClockScheduler(clock),
		board:     item.NewBoard(opts.Width, opts.Height),
		queue:     event.NewEventQueue(),
		hud:       &screen.HUD{},
		particles: particle.NewSystem(rand.New(rand.NewSource(cfg.Seed + 1))),
		trail:     particle.NewTrail(rand.New(rand.NewSource(cfg.Seed + 2))),
		lastTick:  clock.Now(),
	}
	g.router = event.NewRouter(g.queue)

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.factory = item.NewFactory(g.board, rng, opts.Sizes)

	g.stages = stage.NewEngine(stage.Config{
		Definitions: defs,
		Scheduler:   g.sched,
		Clock:       clock,
		Factory:     g.factory,
		Queue:       g.queue,
		HUD:         g.hud,
		Pacing:      cfg.Pacing,
		Rand:        rng,
	})

	g.emitter = feedback.NewEmitter(feedback.Config{
		Sounder:     opts.Sounder,
		Burster:     g.particles,
		Scheduler:   g.sched,
		Clock:       clock,
		Bounds:      g.board.Bounds,
		Celebration: cfg.Celebration,
	})
	g.router.Register(g.emitter)

	g.controller = screen.NewController(g.stages, g.emitter)
	g.stages.SetNavigator(g.controller)
	g.controller.OnChange(g.onViewChange)

	g.placeDecor(screen.ViewWelcome)
	log.Printf("Game ready: %d stages, play area %.0fx%.0f, seed %d", len(defs), opts.Width, opts.Height, cfg.Seed)
	return g
}

// Start presses the welcome button, refused while the play area is too small for the stages
func (g *Game) Start() bool {
	if !g.stages.Fits() {
		w, h := g.board.Bounds()
		log.Printf("Start refused: play area %.0fx%.0f too small", w, h)
		return false
	}
	g.controller.Start()
	return true
}

// Fits reports whether the play area can hold every stage
func (g *Game) Fits() bool {
	return g.stages.Fits()
}

// Reveal presses the success button
func (g *Game) Reveal() {
	g.controller.Reveal()
}

// Click delivers a pointer press at play-area coordinates, reports whether an item took it
func (g *Game) Click(x, y float64) bool {
	_, ok := g.board.Click(x, y)
	return ok
}

// Hover records pointer movement for the sparkle trail
func (g *Game) Hover(x, y float64) {
	g.trail.Move(x, y, g.clock.Now())
}

// Tick runs one frame: due timers, queued events, then animations
func (g *Game) Tick() {
	now := g.clock.Now()
	dt := min(now.Sub(g.lastTick), constants.MaxFrameDelta)
	g.lastTick = now

	g.sched.Tick()
	g.router.DispatchAll()
	g.board.Update(now)
	g.particles.Update(dt)
	g.trail.Update(now)
}

// Resize changes the play area, keeping live items inside it
func (g *Game) Resize(width, height float64) {
	g.board.Resize(width, height)
}

// View returns the visible view
func (g *Game) View() screen.View { return g.controller.View() }

// HUD returns the stage header model
func (g *Game) HUD() *screen.HUD { return g.hud }

// Board returns the play area
func (g *Game) Board() *item.Board { return g.board }

// Particles returns the confetti system
func (g *Game) Particles() *particle.System { return g.particles }

// Trail returns the pointer sparkles
func (g *Game) Trail() *particle.Trail { return g.trail }

// Stages returns the stage engine
func (g *Game) Stages() *stage.Engine { return g.stages }

// Emitter returns the feedback emitter
func (g *Game) Emitter() *feedback.Emitter { return g.emitter }

// Now returns the game clock time
func (g *Game) Now() time.Time { return g.clock.Now() }

func (g *Game) onViewChange(from, to screen.View) {
	if to == screen.ViewGame {
		return
	}
	g.board.Clear()
	g.placeDecor(to)
}
