package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kite/internal/games/kite"
	"github.com/vovakirdan/tui-kite/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round of Balão Arretado in this terminal.

Controls:
  Space/Up/W/Click  - Flap (the first flap starts the round)
  R/Enter           - New round (after winning or losing)
  Ctrl+S            - Save a text screenshot to ~/.kite/screenshots
  Q/Ctrl+C          - Quit

Logs are discarded unless --log-file is set, since the terminal belongs
to the game.

Examples:
  kite play
  kite play --seed 42
  kite play --win-score 10 --fps 30
  kite play --config ./my-kite.yaml --log-file kite.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg, rc, err := loadSettings(width, height)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard, "kite")
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "seed", rc.Seed, "interval", rc.Interval())

	if err := tui.Run(kite.New(cfg), rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
