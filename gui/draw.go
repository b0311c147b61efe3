package gui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/gui/layout"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/lixenwraith/gift-gate/particle"
	"github.com/lixenwraith/gift-gate/screen"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

// drawCentered draws ASCII-folded text centered horizontally at baseline y
func drawCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	s = layout.Plain(s)
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, (constants.ScreenWidth-b.Dx())/2, y, clr)
}

func drawPlayArea(dst *ebiten.Image) {
	r := layout.PlayRect()
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorPlayArea, false)
}

func drawHUD(dst *ebiten.Image, hud *screen.HUD) {
	drawCentered(dst, hud.Title, 30, colorTitle)
	drawCentered(dst, hud.Description, 55, colorText)
	drawCentered(dst, hud.ScoreText(), 85, colorScore)

	dots := hud.Dots()
	spacing := float32(24)
	x0 := float32(constants.ScreenWidth)/2 - spacing*float32(len(dots)-1)/2
	y := float32(constants.ScreenHeight - constants.WindowFooterHeight/2)
	for i, active := range dots {
		c := colorDotIdle
		if active {
			c = colorTitle
		}
		vector.DrawFilledCircle(dst, x0+spacing*float32(i), y, 6, c, true)
	}
}

func drawCopy(dst *ebiten.Image, c screen.Copy) {
	drawCentered(dst, c.Title, 45, colorTitle)
	drawCentered(dst, c.Subtitle, 75, colorMuted)
}

func drawButton(dst *ebiten.Image, label string) {
	r := layout.Button()
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), colorButton, true)
	drawCentered(dst, label, r.Min.Y+r.Dy()/2+4, color.White)
}

func drawItem(dst *ebiten.Image, it *item.Item, now time.Time) {
	px, py := layout.FromPlay(it.X, it.Y)
	if it.Shaking(now) && (now.UnixMilli()/40)%2 == 0 {
		px += 4
	}
	x, y := float32(px), float32(py)
	w, h := float32(it.W), float32(it.H)

	switch it.Kind {
	case item.KindGift:
		vector.DrawFilledRect(dst, x+4, y+14, w-8, h-18, colorGift, true)
		vector.DrawFilledRect(dst, x, y+8, w, 10, colorGift, true)
		vector.DrawFilledRect(dst, x+w/2-4, y+8, 8, h-12, colorRibbon, true)
	case item.KindStar:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, w/2, colorStar, true)
	case item.KindSymbol:
		c := colorTile
		switch {
		case it.Shaking(now):
			c = colorTileShake
		case it.Resolved:
			c = colorTileResolved
		}
		vector.DrawFilledRect(dst, x, y, w, h, c, true)
		vector.StrokeRect(dst, x, y, w, h, 2, colorText, true)
		label := layout.Plain(it.Glyph())
		b := text.BoundString(face, label)
		text.Draw(dst, label, face, int(x+w/2)-b.Dx()/2, int(y+h/2)+4, colorText)
	default:
		label := layout.Plain(it.Glyph())
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, w/2, colorTile, true)
		b := text.BoundString(face, label)
		text.Draw(dst, label, face, int(x+w/2)-b.Dx()/2, int(y+h/2)+4, colorText)
	}
}

func drawParticles(dst *ebiten.Image, ps *particle.System) {
	r := layout.PlayRect()
	ps.Each(func(p *particle.Particle) {
		x := float32(r.Min.X) + float32(p.X)*float32(r.Dx())
		y := float32(r.Min.Y) + float32(p.Y)*float32(r.Dy())
		c := p.Color
		c.A = uint8(255 * p.Fade())
		// vector expects premultiplied alpha
		c.R = uint8(uint16(c.R) * uint16(c.A) / 255)
		c.G = uint8(uint16(c.G) * uint16(c.A) / 255)
		c.B = uint8(uint16(c.B) * uint16(c.A) / 255)
		vector.DrawFilledRect(dst, x-3, y-2, 6, 4, c, false)
	})
}

func drawTrail(dst *ebiten.Image, t *particle.Trail, now time.Time) {
	for _, m := range t.Marks() {
		age := float32(now.Sub(m.Born)) / float32(constants.TrailLifetime)
		px, py := layout.FromPlay(m.X, m.Y)
		vector.DrawFilledCircle(dst, float32(px), float32(py), 4*(1-age)+1, colorTrail, true)
	}
}
