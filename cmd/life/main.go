//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/teor2345/SwiftLife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, err := cfg.BuildGeneration()
	if err != nil {
		log.Fatalf("setting up simulation: %v", err)
	}

	game := app.New(cfg, gen)

	ebiten.SetWindowTitle("life — " + cfg.Topology)
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
