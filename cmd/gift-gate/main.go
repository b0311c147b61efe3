package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gift-gate/audio"
	"github.com/lixenwraith/gift-gate/config"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/feedback"
	"github.com/lixenwraith/gift-gate/game"
	"github.com/lixenwraith/gift-gate/render"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := config.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "gift-gate needs an interactive terminal; try gift-gate-gui")
		os.Exit(1)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			s.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGIFT-GATE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer s.Fini()

	s.EnableMouse()
	s.HideCursor()

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	newApp(s, cfg, sounds).run()
}

// app binds one terminal screen to one game
type app struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.TerminalRenderer
	pressed  bool // Button1 held as of the last mouse event
}

func newApp(s tcell.Screen, cfg *config.Config, sounder feedback.Sounder) *app {
	w, h := s.Size()
	layout := render.Layout{Width: w, Height: h}
	pw, ph := layout.PlaySize()

	g := game.New(game.Options{
		Config:  cfg,
		Width:   pw,
		Height:  ph,
		Sizes:   render.ItemSizes(),
		Sounder: sounder,
	})
	return &app{
		screen:   s,
		game:     g,
		renderer: render.NewTerminalRenderer(s, g),
	}
}

func (a *app) run() {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := a.screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.renderer.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			a.game.Tick()
			a.renderer.Draw()
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		// Press edge only; drags and releases are not clicks
		if down && !a.pressed {
			a.renderer.Click(x, y)
		}
		a.pressed = down
		a.renderer.Move(x, y)

	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.Resize(w, h)
		a.screen.Sync()
	}
	return true
}
