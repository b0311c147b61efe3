// Package render draws the gate on a terminal with tcell and maps cells back to game input
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gift-gate/game"
	"github.com/lixenwraith/gift-gate/screen"
)

// TerminalRenderer owns the layer pipeline and the cell layout for one game
type TerminalRenderer struct {
	game         *game.Game
	orchestrator *Orchestrator
	layout       Layout
}

// NewTerminalRenderer creates a renderer for g drawing to s with the default layers
func NewTerminalRenderer(s tcell.Screen, g *game.Game) *TerminalRenderer {
	w, h := s.Size()
	r := &TerminalRenderer{
		game:         g,
		orchestrator: NewOrchestrator(s),
		layout:       Layout{Width: w, Height: h},
	}

	r.orchestrator.Register(backgroundLayer{}, PriorityBackground)
	r.orchestrator.Register(headerLayer{}, PriorityHeader)
	r.orchestrator.Register(itemsLayer{}, PriorityItems)
	r.orchestrator.Register(particleLayer{}, PriorityParticle)
	r.orchestrator.Register(trailLayer{}, PriorityTrail)
	r.orchestrator.Register(buttonLayer{}, PriorityUI)
	r.orchestrator.Register(footerLayer{}, PriorityOverlay)
	return r
}

// Layout returns the current cell layout
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// Resize updates the layout and the game's play area
func (r *TerminalRenderer) Resize(width, height int) {
	r.layout = Layout{Width: width, Height: height}
	r.game.Resize(r.layout.PlaySize())
}

// Draw renders one frame
func (r *TerminalRenderer) Draw() {
	r.orchestrator.RenderFrame(NewRenderContext(r.game, r.layout))
}

// Click routes a press at a cell to the visible button or the play area
func (r *TerminalRenderer) Click(cx, cy int) bool {
	view := r.game.View()
	if label := screen.CopyFor(view).Button; label != "" && r.layout.Button(label).Contains(cx, cy) {
		switch view {
		case screen.ViewWelcome:
			r.game.Start()
		case screen.ViewSuccess:
			r.game.Reveal()
		}
		return true
	}

	x, y, ok := r.layout.ToPlay(cx, cy)
	if !ok {
		return false
	}
	return r.game.Click(x, y)
}

// Move records pointer motion over the play area
func (r *TerminalRenderer) Move(cx, cy int) {
	if x, y, ok := r.layout.ToPlay(cx, cy); ok {
		r.game.Hover(x, y)
	}
}
