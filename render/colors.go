package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground   = tcell.NewRGBColor(36, 22, 58)    // Deep plum
	RgbPlayArea     = tcell.NewRGBColor(48, 30, 78)    // Slightly lifted plum
	RgbTitle        = tcell.NewRGBColor(255, 133, 162) // Party pink
	RgbText         = tcell.NewRGBColor(235, 230, 245) // Soft white
	RgbMuted        = tcell.NewRGBColor(150, 140, 175) // Lavender gray
	RgbScore        = tcell.NewRGBColor(255, 207, 51)  // Gold
	RgbButton       = tcell.NewRGBColor(157, 80, 187)  // Purple
	RgbButtonText   = tcell.NewRGBColor(255, 255, 255)
	RgbTile         = tcell.NewRGBColor(70, 50, 110)  // Ordered tile
	RgbTileResolved = tcell.NewRGBColor(40, 140, 90)  // Matched tile
	RgbTileShake    = tcell.NewRGBColor(190, 50, 70)  // Wrong-tap flash
	RgbDotActive    = tcell.NewRGBColor(255, 133, 162)
	RgbDotIdle      = tcell.NewRGBColor(90, 80, 115)
	RgbTrail        = tcell.NewRGBColor(255, 240, 180) // Sparkle
)

// fadeColor scales c toward the background by f in [0, 1]
func fadeColor(c color.RGBA, f float64) tcell.Color {
	f = min(max(f, 0), 1)
	br, bg, bb := RgbBackground.RGB()
	mix := func(a uint8, b int32) int32 {
		return int32(float64(b) + (float64(a)-float64(b))*f)
	}
	return tcell.NewRGBColor(mix(c.R, br), mix(c.G, bg), mix(c.B, bb))
}
