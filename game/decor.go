package game

import (
	"github.com/lixenwraith/gift-gate/event"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/lixenwraith/gift-gate/screen"
)

// decorSpec places a decorative glyph at a fraction of the play area
type decorSpec struct {
	glyph item.Symbol
	fx    float64
	fy    float64
}

var decorSets = map[screen.View][]decorSpec{
	screen.ViewWelcome: {
		{"🎀", 0.2, 0.55},
		{"✨", 0.5, 0.7},
		{"🎀", 0.8, 0.55},
	},
	screen.ViewFinal: {
		{"🎈", 0.1, 0.7},
		{"🎂", 0.3, 0.75},
		{"🎉", 0.5, 0.7},
		{"🥳", 0.7, 0.75},
		{"🎈", 0.9, 0.7},
	},
}

// placeDecor fills the board with the view's decorative elements
func (g *Game) placeDecor(v screen.View) {
	width, height := g.board.Bounds()
	for _, d := range decorSets[v] {
		size := g.factory.SizeOf(item.KindDecor)
		pos := item.Point{X: d.fx*width - size.W/2, Y: d.fy*height - size.H/2}
		g.factory.Place(item.KindDecor, d.glyph, pos, g.decorTapped)
	}
}

func (g *Game) decorTapped(it *item.Item) {
	c := it.Center()
	g.queue.Push(event.GameEvent{
		Type: event.EventDecorTapped,
		Payload: &event.ItemPayload{
			Kind:    it.Kind.String(),
			Payload: string(it.Payload),
			X:       c.X,
			Y:       c.Y,
		},
		Timestamp: g.clock.Now(),
	})
}
