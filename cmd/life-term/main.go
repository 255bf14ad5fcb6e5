package main

import (
	"log"
	"strings"
	"time"

	"bitlife/internal/app"
	"bitlife/internal/term"
	"bitlife/pkg/life"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 40, 15
	interval := 100 * time.Millisecond

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life on a torus, in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the grid")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the grid")
	flaggy.Duration(&interval, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for the random initial pattern")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Start from a pattern ["+strings.Join(life.PatternNames(), "|")+"]")
	flaggy.Parse()

	if interval <= 0 {
		flaggy.ShowHelpAndExit("interval must be positive")
	}
	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	s, err := cfg.NewSession()
	if err != nil {
		log.Fatal(err)
	}
	ui, err := term.NewConsoleUI(s, interval)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Start(); err != nil {
		log.Fatal(err)
	}
}
