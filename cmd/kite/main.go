// kite is Balão Arretado, a terminal kite flyer: steer a kite through the gaps
// between festival bunting and bonfires and reach the win score.
//
// Usage:
//
//	kite                  - Play in this terminal (same as kite play)
//	kite play             - Play in this terminal
//	kite serve            - Start SSH server for remote play
//	kite sim              - Run headless autopilot rounds
//	kite config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: from config, about 60)
//	--seed <value>        - RNG seed for reproducible obstacles
//	--config <path>       - Custom config YAML
//	--win-score <n>       - Override the win score
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kite/internal/config"
	"github.com/vovakirdan/tui-kite/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagWinScore int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kite",
	Short: "Balão Arretado - fly a kite through the festival",
	Long: `Balão Arretado is a terminal kite flyer. Flap to keep the kite in the
air, pass between the bunting and the bonfires, and reach the win score.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot rounds
  config   - Print the default configuration

Examples:
  kite
  kite play --seed 42
  kite serve --ssh :2222
  kite sim --rounds 5 --instant
  kite config > ~/.kite/configs/kite.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = loop.tick_ms from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWinScore, "win-score", 0, "Points needed to win (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the game config and applies the command-line overrides.
func loadSettings(screenW, screenH int) (config.KiteConfig, core.RuntimeConfig, error) {
	cfg, err := config.LoadKite(flagConfig)
	if err != nil {
		return config.KiteConfig{}, core.RuntimeConfig{}, err
	}

	if flagWinScore != 0 {
		cfg.Rules.WinScore = flagWinScore
	}
	if err := cfg.Validate(); err != nil {
		return config.KiteConfig{}, core.RuntimeConfig{}, err
	}

	rc := core.RuntimeConfig{
		ScreenW:      screenW,
		ScreenH:      screenH,
		TickInterval: cfg.Loop.TickInterval(),
		Seed:         flagSeed,
	}
	if flagFPS > 0 {
		rc.TickInterval = core.IntervalForRate(flagFPS)
	}
	return cfg, rc, nil
}

// newLogger builds a logger writing to w, or to --log-file when set.
// The returned closer releases the log file.
func newLogger(w io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
