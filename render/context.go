package render

import (
	"time"

	"github.com/lixenwraith/gift-gate/game"
	"github.com/lixenwraith/gift-gate/screen"
)

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Now    time.Time
	View   screen.View
	Layout Layout
	Game   *game.Game
}

// NewRenderContext snapshots the frame state of g
func NewRenderContext(g *game.Game, layout Layout) RenderContext {
	return RenderContext{
		Now:    g.Now(),
		View:   g.View(),
		Layout: layout,
		Game:   g,
	}
}
