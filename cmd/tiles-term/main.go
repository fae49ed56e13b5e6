package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"tilegrid/internal/app"
	"tilegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "tiles-term.log", "debug log file, used with -debug")
	flag.Parse()

	if cfg.Debug {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		cfg.InstallLogger(f)
	}

	sc, err := cfg.NewScene()
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.NewSurface(screen).Run(ctx, sc, cfg.TPS)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
