package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/plus2048/internal/games/t2048"
	"github.com/vovakirdan/plus2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.plus2048/host_key

Examples:
  plus2048 serve                           # Listen on :23234 with auto-generated key
  plus2048 serve --ssh :2222               # Listen on port 2222
  plus2048 serve --host-key ./my_host_key  # Use specific host key
  plus2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "plus2048",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	t2048.SetConfigPath(flagConfig)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger.WithPrefix("plus2048-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", cfg.Address)
	logger.Info("press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
