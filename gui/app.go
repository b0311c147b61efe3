// Package gui runs the gate in a desktop window with ebiten
package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/game"
	"github.com/lixenwraith/gift-gate/gui/layout"
	"github.com/lixenwraith/gift-gate/screen"
)

// App adapts a Game to ebiten's Update/Draw/Layout loop
type App struct {
	game   *game.Game
	cursor image.Point
	debug  bool // Draw the frame-rate and stage overlay
}

// NewApp wraps g, whose play area must match layout.PlaySize
func NewApp(g *game.Game, debug bool) *App {
	return &App{game: g, debug: debug}
}

// Update reads input and advances one frame
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != a.cursor {
		a.cursor = p
		if bx, by, ok := layout.ToPlay(x, y); ok {
			a.game.Hover(bx, by)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.Click(x, y)
	}

	a.game.Tick()
	return nil
}

// Click routes a press at a window pixel to the view button or the play area
func (a *App) Click(px, py int) bool {
	view := a.game.View()
	if screen.CopyFor(view).Button != "" && image.Pt(px, py).In(layout.Button()) {
		switch view {
		case screen.ViewWelcome:
			a.game.Start()
		case screen.ViewSuccess:
			a.game.Reveal()
		}
		return true
	}

	x, y, ok := layout.ToPlay(px, py)
	if !ok {
		return false
	}
	return a.game.Click(x, y)
}

// Draw renders the visible view
func (a *App) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)

	view := a.game.View()
	if view == screen.ViewGame {
		drawPlayArea(dst)
		drawHUD(dst, a.game.HUD())
	} else {
		drawCopy(dst, screen.CopyFor(view))
	}

	now := a.game.Now()
	for _, it := range a.game.Board().Items() {
		drawItem(dst, it, now)
	}
	drawParticles(dst, a.game.Particles())
	drawTrail(dst, a.game.Trail(), now)

	if label := screen.CopyFor(view).Button; label != "" {
		drawButton(dst, label)
	}

	if a.debug {
		st := a.game.Stages().State()
		ebitenutil.DebugPrint(dst, fmt.Sprintf("TPS %0.1f FPS %0.1f\nview %s stage %d score %d\nparticles %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), view, st.Index, st.Score, a.game.Particles().Len()))
	}
}

// Layout fixes the logical screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ScreenWidth, constants.ScreenHeight
}

var (
	colorBackground   = color.RGBA{36, 22, 58, 255}
	colorPlayArea     = color.RGBA{48, 30, 78, 255}
	colorTitle        = color.RGBA{255, 133, 162, 255}
	colorText         = color.RGBA{235, 230, 245, 255}
	colorMuted        = color.RGBA{150, 140, 175, 255}
	colorScore        = color.RGBA{255, 207, 51, 255}
	colorButton       = color.RGBA{157, 80, 187, 255}
	colorTile         = color.RGBA{70, 50, 110, 255}
	colorTileResolved = color.RGBA{40, 140, 90, 255}
	colorTileShake    = color.RGBA{190, 50, 70, 255}
	colorGift         = color.RGBA{230, 70, 90, 255}
	colorRibbon       = color.RGBA{255, 207, 51, 255}
	colorStar         = color.RGBA{255, 220, 80, 255}
	colorDotIdle      = color.RGBA{90, 80, 115, 255}
	colorTrail        = color.RGBA{255, 240, 180, 255}
)
