//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tilegrid/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.InstallLogger(os.Stderr)

	sc, err := cfg.NewScene()
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	game := app.New(cfg, sc)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tiles - " + sc.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
