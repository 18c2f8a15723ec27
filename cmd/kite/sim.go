package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kite/internal/core"
	"github.com/vovakirdan/tui-kite/internal/games/kite"
	"github.com/vovakirdan/tui-kite/internal/loop"
)

var (
	flagRounds   int
	flagInstant  bool
	flagMaxTicks uint64
	flagCols     int
	flagRows     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot rounds",
	Long: `Fly the kite with a simple autopilot, without a terminal UI, and print
the outcome of each round.

By default rounds run in real time through the tick loop, which only
ticks while a round is running. --instant steps the simulation as fast
as possible instead.

Examples:
  kite sim
  kite sim --rounds 10 --instant --seed 7
  kite sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of rounds to fly")
	simCmd.Flags().BoolVar(&flagInstant, "instant", false, "Step as fast as possible instead of in real time")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 100000, "Abandon a round after this many ticks")
	simCmd.Flags().IntVar(&flagCols, "cols", 80, "Virtual terminal width used to size the field")
	simCmd.Flags().IntVar(&flagRows, "rows", 24, "Virtual terminal height used to size the field")
}

// pilot flies the kite: after every tick it flaps when the autopilot says so.
type pilot struct {
	*kite.Game
}

func (p pilot) Advance() kite.Snapshot {
	snap := p.Game.Advance()
	if kite.ShouldFlap(snap.State, snap.Geometry) {
		p.Game.Flap()
	}
	return snap
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagRounds < 1 {
		return fmt.Errorf("--rounds must be at least 1, got %d", flagRounds)
	}

	cfg, rc, err := loadSettings(flagCols, flagRows)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr, "kite-sim")
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := kite.New(cfg)
	game.Reset(rc)

	out := cmd.OutOrStdout()
	wins := 0
	for round := 1; round <= flagRounds; round++ {
		if round > 1 {
			game.Restart()
		}

		var snap kite.Snapshot
		if flagInstant {
			snap = flyInstant(game, flagMaxTicks)
		} else {
			snap, err = flyRealtime(ctx, game, rc, flagMaxTicks, logger)
			if err != nil {
				return err
			}
		}

		if snap.Phase() == kite.PhaseWon {
			wins++
		}
		reportRound(out, round, snap)
	}

	fmt.Fprintf(out, "won %d of %d rounds\n", wins, flagRounds)
	return nil
}

// flyInstant steps the game with autopilot input until the round ends.
func flyInstant(game *kite.Game, maxTicks uint64) kite.Snapshot {
	snap := game.Snapshot()
	for !snap.Phase().IsOver() && snap.Tick < maxTicks {
		in := core.NewInputFrame()
		if kite.ShouldFlap(snap.State, snap.Geometry) {
			in.Set(core.ActionJump)
		}
		snap = game.Step(in)
	}
	return snap
}

// flyRealtime runs one round through the tick loop and returns its last frame.
func flyRealtime(ctx context.Context, game *kite.Game, rc core.RuntimeConfig, maxTicks uint64, logger *log.Logger) (kite.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var last kite.Snapshot
	driver := loop.New(pilot{game}, loop.Options{
		Interval: rc.Interval(),
		Logger:   logger,
		OnFrame: func(s kite.Snapshot) {
			last = s
			if s.Phase().IsOver() || s.Tick >= maxTicks {
				cancel()
			}
		},
	})

	if err := driver.Flap(); err != nil {
		return kite.Snapshot{}, err
	}

	err := driver.Run(ctx)
	if errors.Is(err, context.Canceled) && (last.Phase().IsOver() || last.Tick >= maxTicks) {
		return last, nil
	}
	return last, fmt.Errorf("sim: %w", err)
}

func reportRound(w io.Writer, round int, snap kite.Snapshot) {
	outcome := snap.Phase().String()
	if !snap.Phase().IsOver() {
		outcome = "abandoned"
	}
	fmt.Fprintf(w, "round %d: %s with %d/%d points after %d ticks\n",
		round, outcome, snap.State.Score, snap.Geometry.WinScore, snap.Tick)
}
