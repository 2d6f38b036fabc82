//go:build ebiten

package main

import (
	"flag"
	"log"

	"clear-skies/internal/app"
	"clear-skies/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := app.ParseEnv(cfg); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Clear Skies")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	vsync, err := render.AcquirePresentation(game, cfg.VSync)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.VSync && !vsync {
		log.Printf("[render] running without vsync")
	}
}
