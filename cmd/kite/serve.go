package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kite/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the kite SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent round, sized to the
connecting terminal. Game flags (--config, --seed, --fps, --win-score)
apply to every session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.kite/host_key

Examples:
  kite serve                           # Listen on :23234 with auto-generated key
  kite serve --ssh :2222               # Listen on port 2222
  kite serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	// Screen size is filled in per session from the PTY
	game, rc, err := loadSettings(0, 0)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr, "kite-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, game, rc, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting kite SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
