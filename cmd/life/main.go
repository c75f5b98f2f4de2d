//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/ui"
	"lifegrid/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	randomize := flag.Bool("random", true, "start from a random board")
	flag.Parse()

	ctrl, err := life.NewController(cfg.Life())
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	if *randomize {
		if err := ctrl.Randomize(ctrl.Density()); err != nil {
			log.Fatalf("randomize: %v", err)
		}
	}

	game := app.New(ctrl)

	ebiten.SetWindowTitle("lifegrid — " + ctrl.Rules().String())
	ebiten.SetTPS(life.MaxRate)
	ebiten.SetWindowSize(ctrl.Extent()+ui.PanelWidth, ctrl.Extent())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
