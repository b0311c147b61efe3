package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/gift-gate/audio"
	"github.com/lixenwraith/gift-gate/config"
	"github.com/lixenwraith/gift-gate/constants"
	"github.com/lixenwraith/gift-gate/game"
	"github.com/lixenwraith/gift-gate/gui"
	"github.com/lixenwraith/gift-gate/gui/layout"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := config.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	w, h := layout.PlaySize()
	g := game.New(game.Options{
		Config:  cfg,
		Width:   w,
		Height:  h,
		Sizes:   layout.ItemSizes(),
		Sounder: sounds,
	})

	ebiten.SetWindowSize(constants.ScreenWidth, constants.ScreenHeight)
	ebiten.SetWindowTitle("Gift Gate")
	if err := ebiten.RunGame(gui.NewApp(g, cfg.Debug)); err != nil {
		fmt.Fprintf(os.Stderr, "gift-gate-gui: %v\n", err)
		os.Exit(1)
	}
}
