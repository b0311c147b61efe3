package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/lixenwraith/gift-gate/particle"
	"github.com/lixenwraith/gift-gate/screen"
	"github.com/mattn/go-runewidth"
)

var (
	baseStyle = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	playStyle = tcell.StyleDefault.Background(RgbPlayArea).Foreground(RgbText)
)

// backgroundLayer paints the window and the play area
type backgroundLayer struct{}

func (backgroundLayer) Render(ctx RenderContext, s tcell.Screen) {
	fillRect(s, Rect{W: ctx.Layout.Width, H: ctx.Layout.Height}, baseStyle)
	if ctx.View == screen.ViewGame {
		fillRect(s, ctx.Layout.PlayRect(), playStyle)
	}
}

// headerLayer draws the stage HUD or the view copy
type headerLayer struct{}

func (headerLayer) Render(ctx RenderContext, s tcell.Screen) {
	w := ctx.Layout.Width
	if ctx.View != screen.ViewGame {
		c := screen.CopyFor(ctx.View)
		drawCentered(s, 1, w, c.Title, baseStyle.Foreground(RgbTitle).Bold(true))
		drawCentered(s, 3, w, c.Subtitle, baseStyle.Foreground(RgbMuted))
		return
	}

	hud := ctx.Game.HUD()
	drawCentered(s, 0, w, hud.Title, baseStyle.Foreground(RgbTitle).Bold(true))
	drawCentered(s, 1, w, hud.Description, baseStyle)
	drawCentered(s, 3, w, hud.ScoreText(), baseStyle.Foreground(RgbScore).Bold(true))
}

// itemsLayer draws live board items
type itemsLayer struct{}

func (itemsLayer) Render(ctx RenderContext, s tcell.Screen) {
	for _, it := range ctx.Game.Board().Items() {
		drawItem(ctx, s, it)
	}
}

func drawItem(ctx RenderContext, s tcell.Screen, it *item.Item) {
	x, y := ctx.Layout.FromPlay(it.X, it.Y)
	w, h := int(math.Round(it.W)), int(math.Round(it.H))
	shaking := it.Shaking(ctx.Now)
	if shaking && (ctx.Now.UnixMilli()/40)%2 == 0 {
		x++
	}

	style := playStyle
	if ctx.View != screen.ViewGame {
		style = baseStyle
	}
	switch {
	case it.Kind != item.KindSymbol:
	case shaking:
		style = style.Background(RgbTileShake)
		fillRect(s, Rect{X: x, Y: y, W: w, H: h}, style)
	case it.Resolved:
		style = style.Background(RgbTileResolved)
		fillRect(s, Rect{X: x, Y: y, W: w, H: h}, style)
	default:
		style = style.Background(RgbTile)
		fillRect(s, Rect{X: x, Y: y, W: w, H: h}, style)
	}

	glyph := it.Glyph()
	gx := x + max((w-runewidth.StringWidth(glyph))/2, 0)
	gy := y + (h-1)/2
	drawText(s, gx, gy, glyph, style)
}

// particleLayer draws confetti over the whole window
type particleLayer struct{}

var confettiRunes = []rune{'•', '▪', '✦', '*'}

func (particleLayer) Render(ctx RenderContext, s tcell.Screen) {
	r := ctx.Layout.PlayRect()
	i := 0
	ctx.Game.Particles().Each(func(p *particle.Particle) {
		cx := r.X + int(p.X*float64(r.W))
		cy := r.Y + int(p.Y*float64(r.H))
		i++
		if cx < 0 || cy < 0 || cx >= ctx.Layout.Width || cy >= ctx.Layout.Height {
			return
		}
		_, _, under, _ := s.GetContent(cx, cy)
		_, bg, _ := under.Decompose()
		style := tcell.StyleDefault.Background(bg).Foreground(fadeColor(p.Color, p.Fade()))
		s.SetContent(cx, cy, confettiRunes[i%len(confettiRunes)], nil, style)
	})
}

// trailLayer draws pointer sparkles
type trailLayer struct{}

func (trailLayer) Render(ctx RenderContext, s tcell.Screen) {
	for _, m := range ctx.Game.Trail().Marks() {
		cx, cy := ctx.Layout.FromPlay(m.X-0.5, m.Y-0.5)
		age := float64(ctx.Now.Sub(m.Born)) / float64(constants.TrailLifetime)
		r := '✧'
		if age < 0.5 {
			r = '✦'
		}
		_, _, under, _ := s.GetContent(cx, cy)
		_, bg, _ := under.Decompose()
		s.SetContent(cx, cy, r, nil, tcell.StyleDefault.Background(bg).Foreground(RgbTrail))
	}
}

// buttonLayer draws the welcome and success buttons
type buttonLayer struct{}

func (buttonLayer) IsVisible(ctx RenderContext) bool {
	return screen.CopyFor(ctx.View).Button != ""
}

func (buttonLayer) Render(ctx RenderContext, s tcell.Screen) {
	label := screen.CopyFor(ctx.View).Button
	r := ctx.Layout.Button(label)
	style := tcell.StyleDefault.Background(RgbButton).Foreground(RgbButtonText).Bold(true)
	fillRect(s, r, style)
	drawCentered(s, r.Y+1, ctx.Layout.Width, label, style)
}

// footerLayer draws progress dots and key hints
type footerLayer struct{}

func (footerLayer) Render(ctx RenderContext, s tcell.Screen) {
	h := ctx.Layout.Height
	if ctx.View == screen.ViewGame {
		dots := ctx.Game.HUD().Dots()
		x := max((ctx.Layout.Width-(len(dots)*2-1))/2, 0)
		for i, active := range dots {
			style := baseStyle.Foreground(RgbDotIdle)
			r := '○'
			if active {
				style = baseStyle.Foreground(RgbDotActive)
				r = '●'
			}
			s.SetContent(x+i*2, h-2, r, nil, style)
		}
	}
	if ctx.View == screen.ViewWelcome && !ctx.Game.Fits() {
		drawCentered(s, h-1, ctx.Layout.Width, "enlarge the terminal to play", baseStyle.Foreground(RgbMuted))
		return
	}
	drawCentered(s, h-1, ctx.Layout.Width, "click to play · q to quit", baseStyle.Foreground(RgbMuted))
}
