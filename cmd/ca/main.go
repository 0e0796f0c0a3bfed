//go:build ebiten

package main

import (
	"errors"
	"log"

	"caengine/internal/app"
	"caengine/internal/logging"
	_ "caengine/internal/sims/all"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	logger := logging.Must(cfg.Verbose)
	defer logger.Sync()

	run, err := cfg.Run()
	if err != nil {
		log.Fatal(err)
	}
	rule, err := run.Rule()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(rule, run.EngineOptions(), cfg.HUDWidth, logger)
	if err != nil {
		log.Fatal(err)
	}
	game.Engine().Start()
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("caengine - " + rule.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", zap.Error(err))
	}
}
