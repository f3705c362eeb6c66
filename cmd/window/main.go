package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/random"
	"github.com/tomz197/pong/internal/window"
)

func main() {
	logger := config.NewLogger(os.Stderr, "pong")

	settings, err := config.LoadSettingsFromEnv()
	if err != nil {
		logger.Error("failed to load settings", "err", err)
		os.Exit(1)
	}

	match, err := loop.NewMatch(settings, random.NewSource(settings.Seed), loop.WithLogger(logger))
	if err != nil {
		logger.Error("failed to start match", "err", err)
		os.Exit(1)
	}

	game := window.NewGame(match)

	ebiten.SetWindowSize(game.Size())
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(settings.TickRate)

	// RunGame returns nil for ebiten.Termination and for a closed window.
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}

	logger.Info("final score", "left", match.Score.Left, "right", match.Score.Right)
}
