//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/session"
	"conway/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var (
		sim  core.Automaton
		cell = cfg.Cell
		seed = cfg.Seed
	)
	if cfg.ConfigFile != "" {
		board, err := life.LoadConfig(cfg.ConfigFile)
		if err != nil {
			log.Fatal(err)
		}
		sim, err = life.NewWithConfig(board)
		if err != nil {
			log.Fatal(err)
		}
		cell = board.CellSize
		seed = board.Seed
	} else {
		factory, ok := core.Automata()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown automaton %q", cfg.Sim)
		}
		var err error
		sim, err = factory(cfg.Params())
		if err != nil {
			log.Fatal(err)
		}
	}

	sess := session.New(sim, cell, seed)
	sess.SetRate(cfg.Speed)
	game := app.New(sess)

	size := sim.Size()
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(size.W*cell, size.H*cell)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
