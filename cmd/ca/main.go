//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"bitlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	s, err := cfg.NewSession()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(s, cfg)
	size := s.Size()

	ebiten.SetWindowTitle("bitlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
