package render

import (
	"math"

	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/mattn/go-runewidth"
)

// Layout maps terminal cells to play-area units
// The play area spans every column between the header and footer rows; one cell is one unit
type Layout struct {
	Width  int
	Height int
}

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell is inside the rectangle
func (r Rect) Contains(cx, cy int) bool {
	return cx >= r.X && cx < r.X+r.W && cy >= r.Y && cy < r.Y+r.H
}

// PlayRect returns the cells of the play area, at least one cell in each direction
func (l Layout) PlayRect() Rect {
	return Rect{
		X: 0,
		Y: constants.HeaderRows,
		W: max(l.Width, 1),
		H: max(l.Height-constants.HeaderRows-constants.FooterRows, 1),
	}
}

// PlaySize returns the play area in board units
func (l Layout) PlaySize() (float64, float64) {
	r := l.PlayRect()
	return float64(r.W), float64(r.H)
}

// ToPlay converts a cell to the board coordinate at its center
func (l Layout) ToPlay(cx, cy int) (x, y float64, ok bool) {
	r := l.PlayRect()
	if !r.Contains(cx, cy) {
		return 0, 0, false
	}
	return float64(cx-r.X) + 0.5, float64(cy-r.Y) + 0.5, true
}

// FromPlay converts a board coordinate to the nearest cell
func (l Layout) FromPlay(x, y float64) (cx, cy int) {
	r := l.PlayRect()
	return r.X + int(math.Round(x)), r.Y + int(math.Round(y))
}

// Button returns the cells of a view button carrying label
func (l Layout) Button(label string) Rect {
	w := runewidth.StringWidth(label) + 6
	return Rect{
		X: (l.Width - w) / 2,
		Y: constants.HeaderRows + 1,
		W: w,
		H: 3,
	}
}

// ItemSizes returns the board boxes used on a terminal
func ItemSizes() map[item.Kind]item.Size {
	return map[item.Kind]item.Size{
		item.KindGift:   {W: constants.TermGiftWidth, H: constants.TermGiftHeight},
		item.KindSymbol: {W: constants.TermSymbolWidth, H: constants.TermSymbolHeight},
		item.KindStar:   {W: constants.TermStarWidth, H: constants.TermStarHeight},
		item.KindDecor:  {W: constants.TermDecorWidth, H: constants.TermDecorHeight},
	}
}
