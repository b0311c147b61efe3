// Package layout maps window pixels to play-area units for the desktop frontend
package layout

import (
	"image"
	"strings"

	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/item"
)

// PlayRect returns the pixel rectangle of the play area
func PlayRect() image.Rectangle {
	return image.Rect(0, constants.WindowHeaderHeight, constants.ScreenWidth, constants.ScreenHeight-constants.WindowFooterHeight)
}

// PlaySize returns the play area in board units, one unit per pixel
func PlaySize() (float64, float64) {
	r := PlayRect()
	return float64(r.Dx()), float64(r.Dy())
}

// ToPlay converts a window pixel to board coordinates
func ToPlay(px, py int) (x, y float64, ok bool) {
	r := PlayRect()
	if !image.Pt(px, py).In(r) {
		return 0, 0, false
	}
	return float64(px - r.Min.X), float64(py - r.Min.Y), true
}

// FromPlay converts board coordinates to window pixels
func FromPlay(x, y float64) (float64, float64) {
	r := PlayRect()
	return x + float64(r.Min.X), y + float64(r.Min.Y)
}

// Button returns the pixel rectangle of the view button
func Button() image.Rectangle {
	r := PlayRect()
	x := (constants.ScreenWidth - constants.ButtonWidth) / 2
	y := r.Min.Y + 40
	return image.Rect(x, y, x+constants.ButtonWidth, y+constants.ButtonHeight)
}

// ItemSizes returns the board boxes used in the window
func ItemSizes() map[item.Kind]item.Size {
	return map[item.Kind]item.Size{
		item.KindGift:   {W: constants.WindowItemSize, H: constants.WindowItemSize},
		item.KindSymbol: {W: constants.WindowItemSize, H: constants.WindowItemSize},
		item.KindStar:   {W: constants.WindowStarSize, H: constants.WindowStarSize},
		item.KindDecor:  {W: constants.WindowItemSize, H: constants.WindowItemSize},
	}
}

// glyphNames spells out the emoji used by the gate for bitmap fonts without color glyphs
var glyphNames = map[rune]string{
	'🎁': "gift",
	'🍍': "pineapple",
	'🦆': "duck",
	'🦄': "unicorn",
	'🍕': "pizza",
	'⭐': "star",
	'🧩': "",
	'⚡': "",
	'🎉': "",
	'🎂': "cake",
	'🎈': "balloon",
	'🥳': "party",
	'🎀': "bow",
	'✨': "sparkles",
}

// Plain rewrites text for ASCII-only fonts: known emoji become words, other non-ASCII runes are dropped
func Plain(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch name, known := glyphNames[r]; {
		case known:
			b.WriteString(name)
		case r == '→':
			b.WriteString("->")
		case r < 0x80:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
