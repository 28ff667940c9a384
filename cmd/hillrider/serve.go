package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hill Rider SSH server",
	Long: `Start an SSH server that lets users connect and ride.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all riders share the same leaderboard).
Sessions are silent; sound only plays in local games.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hillrider/host_key

Examples:
  hillrider serve                           # Listen on :23234 with auto-generated key
  hillrider serve --ssh :2222               # Listen on port 2222
  hillrider serve --host-key ./my_host_key  # Use specific host key
  hillrider serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	riderCfg, err := loadRiderConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Rider = riderCfg

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("press Ctrl+C to stop", "address", cfg.Address)
	return server.ListenAndServe()
}
