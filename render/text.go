package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text starting at (x, y) and returns the column after it
// Zero-width runes such as variation selectors are dropped
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes text centered across width
func drawCentered(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := max((width-runewidth.StringWidth(text))/2, 0)
	drawText(s, x, y, text, style)
}

// fillRect paints a rectangle with blanks in style
func fillRect(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
