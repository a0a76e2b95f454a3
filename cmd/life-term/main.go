package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/teor2345/SwiftLife/internal/app"
	"github.com/teor2345/SwiftLife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	textMode := flag.Bool("text", false, "print each generation to stdout instead of drawing")
	hold := flag.Bool("hold", false, "keep the final frame on screen until a key is pressed")
	flag.Parse()

	gen, err := cfg.BuildGeneration()
	if err != nil {
		log.Fatalf("setting up simulation: %v", err)
	}

	if *textMode {
		fmt.Println(gen)
		for !gen.Finished() {
			gen.StepParallel(cfg.Workers)
			fmt.Println(gen)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	opts := term.Options{TPS: cfg.TPS, Workers: cfg.Workers, HoldOnFinish: *hold}
	if err := term.Run(screen, gen, opts); err != nil {
		log.Fatalf("running simulation: %v", err)
	}
}
