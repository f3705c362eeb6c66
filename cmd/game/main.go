package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/random"
)

func main() {
	logger := config.NewLogger(os.Stderr, "pong")

	settings, err := config.LoadSettingsFromEnv()
	if err != nil {
		logger.Error("failed to load settings", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// Nothing may write to the terminal while it is raw except the session.
	session, err := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Settings: settings,
		Random:   random.NewSource(settings.Seed),
	})
	if err != nil {
		logger.Error("failed to start match", "err", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		os.Exit(1)
	}

	runErr := session.Run(ctx)
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		logger.Error("game error", "err", runErr)
		os.Exit(1)
	}

	score := session.Match().Score
	logger.Info("final score", "left", score.Left, "right", score.Right)
}
